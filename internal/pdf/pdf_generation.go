package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"vaicrm/internal/models"
)

// Generator — interface (fácil de mockar nos testes)
type Generator interface {
	GenerateResumoVenda(deal *models.Deal) (string, error)
}

// DocumentGenerator — implementação
type DocumentGenerator struct {
	RootDir  string // raiz de armazenamento, ex. "./files"
	FontPath string // caminho do TTF, ex. "assets/fonts/DejaVuSans.ttf"
	fontName string // nome interno da fonte no PDF
}

func NewDocumentGenerator(rootDir, fontPath string) *DocumentGenerator {
	return &DocumentGenerator{
		RootDir:  filepath.Clean(rootDir),
		FontPath: fontPath,
		fontName: "DejaVu",
	}
}

// GenerateResumoVenda monta o resumo da venda em A4 e devolve o caminho
// do arquivo gerado.
func (g *DocumentGenerator) GenerateResumoVenda(deal *models.Deal) (string, error) {
	absPath, err := g.ensureTarget(fmt.Sprintf("resumo_%s.pdf", deal.ID))
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Resumo da venda %s", deal.ID), false)
	pdf.SetAuthor("VAI CRM", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	g.addUTF8Font(pdf)
	pdf.AddPage()

	// ===== Cabeçalho
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "RESUMO DA VENDA", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	criada := deal.CreatedAt
	if criada.IsZero() {
		criada = time.Now()
	}
	sub := fmt.Sprintf("%s  •  criada em %s", deal.Empresa, criada.Format("02/01/2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)

	pdf.Ln(3)

	// ===== Cliente
	g.sectionTitle(pdf, "Cliente")
	g.kvLine(pdf, "Empresa", deal.Empresa)
	g.kvLine(pdf, "CNPJ", deal.CNPJ)
	g.kvLine(pdf, "Responsável", deal.Responsavel)
	g.kvLine(pdf, "Whatsapp", deal.Whatsapp)
	g.kvLine(pdf, "E-mail", deal.Email)
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Venda
	g.sectionTitle(pdf, "Venda")
	g.kvLine(pdf, "Vendedor", deal.Owner)
	g.kvLine(pdf, "Produto", deal.Produto)
	g.kvLine(pdf, "Status", deal.Status)
	g.kvLine(pdf, "Tipo de venda", deal.TipoVenda)
	g.kvLine(pdf, "Forma de pagamento", deal.FormaPagamento)
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Composição do valor
	g.sectionTitle(pdf, "Composição do valor")
	g.kvLine(pdf, "Conexões", strconv.Itoa(deal.QtdConexoes))
	g.kvLine(pdf, "Usuários", strconv.Itoa(deal.QtdUsuarios))
	if deal.PlataformaHabilitada {
		g.kvLine(pdf, "Plataforma", "habilitada")
	}
	if deal.QtdUraCanais > 0 {
		g.kvLine(pdf, "Canais de URA", strconv.Itoa(deal.QtdUraCanais))
	}
	if deal.QtdIaCanais > 0 {
		g.kvLine(pdf, "Canais de IA", strconv.Itoa(deal.QtdIaCanais))
	}
	if deal.QtdApiOficial > 0 {
		g.kvLine(pdf, "API oficial", strconv.Itoa(deal.QtdApiOficial))
	}
	if deal.LeadsValor > 0 {
		g.kvLine(pdf, "Leads", formatBRL(deal.LeadsValor))
	}
	if deal.Desconto > 0 {
		g.kvLine(pdf, "Desconto", "- "+formatBRL(deal.Desconto))
	}
	pdf.Ln(1)

	pdf.SetFont(g.fontName, "B", 12)
	g.kvLine(pdf, "Subtotal", formatBRL(deal.Subtotal))
	g.kvLine(pdf, "Total", formatBRL(deal.Total))
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Treinamento
	if deal.TreinamentoData != "" || deal.TreinamentoHora != "" {
		g.sectionTitle(pdf, "Treinamento")
		g.kvLine(pdf, "Data", deal.TreinamentoData)
		g.kvLine(pdf, "Hora", deal.TreinamentoHora)
		g.kvLine(pdf, "Situação", deal.TreinamentoStatus)
		pdf.Ln(2)
		g.hr(pdf)
	}

	// ===== Observações
	if len(deal.Observacoes) > 0 {
		g.sectionTitle(pdf, "Observações")
		pdf.SetFont(g.fontName, "", 11)
		for _, o := range deal.Observacoes {
			pdf.MultiCell(0, 6, fmt.Sprintf("%s — %s", o.Data, o.Nota), "", "L", false)
		}
		pdf.Ln(2)
	}

	// ===== Numeração de páginas
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Pág. %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

// ===== helpers =====

func (g *DocumentGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *DocumentGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	if val == "" {
		val = "—"
	}
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *DocumentGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}

func (g *DocumentGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename = filepath.Base(filename) // segurança
	return filepath.Join(g.RootDir, filename), nil
}

func (g *DocumentGenerator) addUTF8Font(pdf *gofpdf.Fpdf) {
	// AddUTF8Font recebe o caminho do TTF
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}

func formatBRL(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}
