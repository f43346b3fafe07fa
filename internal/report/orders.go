// Package report lays out already-fetched data into printable PDF
// documents. It holds no state and performs no network access.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/homecraft/homecraft-cli/internal/model"
)

// ErrNoOrders signals an orders report requested for an empty history.
var ErrNoOrders = errors.New("no orders to report")

func formatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// Orders writes the landscape orders report for the given history.
func Orders(w io.Writer, orders []model.Order, user *model.User) error {
	if len(orders) == 0 {
		return ErrNoOrders
	}

	var userName string
	if user != nil {
		userName = user.Name
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d of {nb} - HomeCraft Orders Report - Confidential", pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(22, 163, 74)
	pdf.Text(50, 25, "Orders Report")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(50, 35, "Generated on: "+time.Now().Format("1/2/2006, 3:04:05 PM"))
	pdf.Text(50, 42, "Generated by: "+userName)

	var totalRevenue float64
	for _, order := range orders {
		totalRevenue += order.TotalPrice
	}
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(200, 35, fmt.Sprintf("Total Orders: %d", len(orders)))
	pdf.Text(200, 42, "Total Revenue: "+formatCurrency(totalRevenue))

	headers := []string{"Order ID", "Date", "Customer", "Items", "Total", "Payment Status", "Order Status", "Shipping Method"}
	widths := []float64{25, 30, 45, 20, 30, 40, 40, 37}

	pdf.SetY(55)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(22, 163, 74)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(200, 200, 200)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, order := range orders {
		shipping := order.ShippingMethod
		if shipping == "" {
			shipping = "Standard"
		}
		fill := i%2 == 1
		if fill {
			pdf.SetFillColor(240, 250, 245)
		}
		row := []string{
			strconv.FormatInt(order.OrderID, 10),
			order.OrderDate.Format("1/2/2006"),
			userName,
			strconv.Itoa(len(order.Products)),
			formatCurrency(order.TotalPrice),
			order.PaymentStatus,
			order.OrderStatus,
			shipping,
		}
		for j, cell := range row {
			pdf.CellFormat(widths[j], 7, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
