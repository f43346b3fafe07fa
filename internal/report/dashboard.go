package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/homecraft/homecraft-cli/internal/model"
)

// Dashboard writes the admin dashboard report: overview statistics,
// recent activities, best sellers, customer satisfaction and
// inventory health.
func Dashboard(
	w io.Writer,
	data *model.DashboardData,
	activities []model.Activity,
	topProducts []model.TopProduct,
	overallRating float64,
	inventory *model.InventoryStatus,
) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(41, 128, 185)
	pdf.Text(15, 15, "Admin Dashboard Report")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(15, 25, "Generated on: "+time.Now().Format("1/2/2006, 3:04:05 PM"))

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(15, 35, "Overview Statistics")
	pdf.SetY(40)
	writeTable(pdf, []string{"Metric", "Value"}, [][]string{
		{"Total Users", strconv.Itoa(data.TotalUsersCount)},
		{"Total Revenue", formatCurrency(data.TotalRevenue)},
		{"Total Orders", strconv.Itoa(data.TotalOrdersCount)},
		{"Total Products", strconv.Itoa(data.TotalProductsCount)},
	})

	pdf.Ln(10)
	sectionHeader(pdf, "Recent Activities")
	rows := make([][]string, 0, len(activities))
	for _, activity := range activities {
		rows = append(rows, []string{activity.ActivityDescription, activity.ActivityCreatedAt})
	}
	writeTable(pdf, []string{"Activity", "Date"}, rows)

	pdf.Ln(10)
	sectionHeader(pdf, "Top Performing Products")
	rows = rows[:0]
	for _, product := range topProducts {
		rows = append(rows, []string{
			product.ProductName,
			strconv.Itoa(product.SalesCount),
			formatCurrency(product.TotalRevenue),
		})
	}
	writeTable(pdf, []string{"Product", "Sales", "Revenue"}, rows)

	pdf.Ln(10)
	sectionHeader(pdf, "Customer Satisfaction")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(55, 65, 81)
	y := pdf.GetY() + 8
	pdf.Text(15, y, "Overall Rating:")
	for i := 0; i < 5; i++ {
		if float64(i) < math.Floor(overallRating) {
			pdf.SetFillColor(250, 204, 21)
		} else {
			pdf.SetFillColor(209, 213, 219)
		}
		pdf.Circle(85+float64(i)*10, y-2, 2, "F")
	}
	pdf.Text(140, y, fmt.Sprintf("%.1f/5.0", overallRating))
	pdf.SetY(y + 8)

	pdf.Ln(6)
	sectionHeader(pdf, "Inventory Status")
	writeTable(pdf, []string{"Status", "Count"}, [][]string{
		{"Low Stock Items", strconv.Itoa(inventory.LowStockItems)},
		{"Out of Stock Items", strconv.Itoa(inventory.OutOfStockItems)},
	})

	return pdf.Output(w)
}

func sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(22, 163, 74)
	pdf.Text(15, pdf.GetY()+6, title)
	pdf.SetY(pdf.GetY() + 10)
}

func writeTable(pdf *fpdf.Fpdf, headers []string, rows [][]string) {
	const colWidth = 60.0

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(22, 163, 74)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetX(15)
	for _, header := range headers {
		pdf.CellFormat(colWidth, 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.SetX(15)
		for _, cell := range row {
			pdf.CellFormat(colWidth, 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
