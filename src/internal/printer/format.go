package printer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/pkg/escpos"
)

const separator = "----------------------------------------\n"

// timestampLayout renders in the pt-BR convention.
const timestampLayout = "02/01/2006 15:04:05"

// Format turns a persisted order into the directive list for the kitchen
// receipt. Pure: same order, same directives.
func Format(order *entity.Order, businessName string) []escpos.Directive {
	d := []escpos.Directive{
		escpos.Initialize{},
		escpos.DefaultLineSpacing{},

		// header
		escpos.SetAlignment{Align: escpos.AlignCenter},
		escpos.SetSize{Size: escpos.SizeDouble},
		escpos.SetBold{On: true},
		escpos.Text{Content: businessName + "\n"},
		escpos.SetSize{Size: escpos.SizeNormal},
		escpos.SetBold{On: false},
		escpos.Text{Content: "\n"},

		// metadata
		escpos.SetAlignment{Align: escpos.AlignLeft},
		escpos.Text{Content: fmt.Sprintf("Pedido #%s - Origem: %s\n", order.OrderNumber, order.Source)},
		escpos.Text{Content: fmt.Sprintf("Data: %s\n", order.CreatedAt.Format(timestampLayout))},
		escpos.Text{Content: fmt.Sprintf("Status: %s\n", order.Status)},
		escpos.Text{Content: separator},

		// customer
		escpos.SetBold{On: true},
		escpos.Text{Content: "DADOS DO CLIENTE:\n"},
		escpos.SetBold{On: false},
		escpos.Text{Content: fmt.Sprintf("Nome: %s\n", order.CustomerName)},
		escpos.Text{Content: fmt.Sprintf("Telefone: %s\n", order.CustomerPhone)},
		escpos.Text{Content: fmt.Sprintf("Endereco: %s\n", order.DeliveryAddress)},
	}

	if order.AddressReference != nil {
		d = append(d, escpos.Text{Content: fmt.Sprintf("Referencia: %s\n", *order.AddressReference)})
	}
	d = append(d, escpos.Text{Content: separator})

	// items
	d = append(d,
		escpos.SetBold{On: true},
		escpos.Text{Content: "ITENS DO PEDIDO:\n"},
		escpos.SetBold{On: false},
	)
	for _, item := range order.Items {
		d = append(d, escpos.Text{Content: fmt.Sprintf("%dx %s (%s) - %s\n",
			item.Quantity, item.ProductName, FormatBRL(item.UnitPrice), FormatBRL(item.TotalPrice))})
		if item.Customizations != nil {
			d = append(d, escpos.Text{Content: fmt.Sprintf("  Obs: %s\n", *item.Customizations)})
		}
		if item.SpecialInstructions != nil {
			d = append(d, escpos.Text{Content: fmt.Sprintf("  Obs: %s\n", *item.SpecialInstructions)})
		}
	}
	d = append(d, escpos.Text{Content: separator})

	// total
	d = append(d,
		escpos.SetAlignment{Align: escpos.AlignRight},
		escpos.Text{Content: "TOTAL: "},
		escpos.SetSize{Size: escpos.SizeDouble},
		escpos.SetBold{On: true},
		escpos.Text{Content: FormatBRL(order.Total) + "\n"},
		escpos.SetSize{Size: escpos.SizeNormal},
		escpos.SetBold{On: false},
		escpos.SetAlignment{Align: escpos.AlignLeft},
		escpos.Text{Content: fmt.Sprintf("Pagamento: %s\n", order.PaymentMethod)},
	)
	if order.OrderNotes != nil {
		d = append(d, escpos.Text{Content: fmt.Sprintf("Obs. Gerais: %s\n", *order.OrderNotes)})
	}
	d = append(d, escpos.Text{Content: "\n"})

	// footer
	d = append(d,
		escpos.SetAlignment{Align: escpos.AlignCenter},
		escpos.Text{Content: "Agradecemos a preferencia!\n"},
		escpos.Text{Content: "\n"},
		escpos.Cut{},
	)

	return d
}

// FormatBRL renders an amount as pt-BR currency: R$ 1.234,56.
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sign, grouped.String(), fracPart)
}
