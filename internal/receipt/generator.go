package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

// Brand palette of the boleta.
var (
	colorPrimary   = [3]int{46, 125, 50}  // green
	colorSecondary = [3]int{253, 216, 53} // yellow
	colorText      = [3]int{51, 51, 51}
)

type Line struct {
	ProductID int64
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Subtotal is cantidad × precio unitario, rounded to 2 decimals on its own.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)).Round(2)
}

// Data is everything a boleta renders. Destination is the delivery address
// or the pickup branch, whichever applies.
type Data struct {
	OrderID       int64
	CustomerName  string
	CustomerPhone string
	Destination   string
	OrderedAt     time.Time
	Lines         []Line
	Total         decimal.Decimal
}

// Generator renders boletas into dir and exposes them under
// <baseURL>/boletas/. One document per order; regenerating overwrites.
type Generator struct {
	dir      string
	baseURL  string
	logoPath string
}

func NewGenerator(dir, baseURL, logoPath string) *Generator {
	return &Generator{
		dir:      dir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logoPath: logoPath,
	}
}

// DocumentName is the deterministic file name for an order's boleta.
func DocumentName(orderID int64) string {
	return fmt.Sprintf("boleta_%d.pdf", orderID)
}

// Generate writes the boleta PDF for d and returns its public URL.
func (g *Generator) Generate(d Data) (string, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("create receipts dir: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Logo is optional: a missing file is logged and skipped.
	if _, err := os.Stat(g.logoPath); err == nil {
		pdf.ImageOptions(g.logoPath, 15, 12, 28, 28, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	} else {
		log.Warnf("receipt: logo %s not found, skipping", g.logoPath)
	}

	// Header
	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetXY(50, 16)
	pdf.CellFormat(0, 10, tr("Norky's Pollería"), "", 1, "L", false, 0, "")

	pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(50, 27)
	pdf.CellFormat(0, 4, tr("Av. Principal 123 - Lima"), "", 1, "L", false, 0, "")
	pdf.SetX(50)
	pdf.CellFormat(0, 4, tr("Teléfono: 987-654-321"), "", 1, "L", false, 0, "")

	pdf.SetDrawColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.Line(15, 44, 195, 44)

	// Order number and customer block
	pdf.SetY(50)
	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Boleta de Venta N°: %d", d.OrderID)), "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		fmt.Sprintf("Cliente: %s", d.CustomerName),
		fmt.Sprintf("Teléfono: %s", d.CustomerPhone),
		fmt.Sprintf("Dirección: %s", d.Destination),
		fmt.Sprintf("Fecha: %s", d.OrderedAt.Format("02/01/2006 15:04")),
	} {
		pdf.SetX(15)
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}

	// Line-item table
	pdf.Ln(6)
	pdf.SetX(15)
	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.SetFont("Helvetica", "BU", 11)
	pdf.CellFormat(0, 6, tr("Detalle del Pedido:"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	colWidths := []float64{18, 82, 20, 30, 30}
	headers := []string{"ID", "Producto", "Cant.", "Precio", "Subtotal"}

	pdf.SetX(15)
	pdf.SetFillColor(colorSecondary[0], colorSecondary[1], colorSecondary[2])
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, tr(h), "", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range d.Lines {
		pdf.SetX(15)
		pdf.CellFormat(colWidths[0], 7, fmt.Sprintf("%d", l.ProductID), "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, tr(l.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, fmt.Sprintf("%d", l.Quantity), "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, "S/ "+l.UnitPrice.StringFixed(2), "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[4], 7, "S/ "+l.Subtotal().StringFixed(2), "", 1, "L", false, 0, "")
	}

	y := pdf.GetY() + 2
	pdf.Line(15, y, 195, y)

	// Total box
	pdf.SetY(y + 4)
	pdf.SetX(135)
	pdf.SetFillColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(60, 10, "Total: S/ "+d.Total.StringFixed(2), "", 1, "C", true, 0, "")

	// Footer
	pdf.SetY(270)
	pdf.SetTextColor(128, 128, 128)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr("Gracias por su compra. ¡Lo esperamos pronto en Norky's!"), "", 1, "C", false, 0, "")

	path := filepath.Join(g.dir, DocumentName(d.OrderID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write receipt %s: %w", path, err)
	}

	return fmt.Sprintf("%s/boletas/%s", g.baseURL, DocumentName(d.OrderID)), nil
}
