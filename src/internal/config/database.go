package config

import (
	"github.com/spf13/viper"

	"github.com/bcaffe88/cardapio-completo/src/pkg/databases/postgres"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
)

func NewDatabase(viper *viper.Viper, log log.Log) postgres.DBInterface {
	db, err := postgres.InitConnection(viper, log)
	if err != nil {
		log.Error("database init", err.Error(), "config", "")
	}

	return db
}
