package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"vaicrm/internal/models"
)

// dealColumns — a ponte única camelCase (modelo) <-> snake_case (tabela).
// Toda leitura e escrita passa por esta lista, na mesma ordem.
const dealColumns = `
	id, created_at, owner_id, owner, status, produto,
	empresa, cnpj, responsavel, whatsapp, email,
	forma_pagamento,
	qtd_conexoes, qtd_usuarios, plataforma_habilitada,
	qtd_ura_canais, qtd_ia_canais, qtd_api_oficial, leads_valor,
	desconto, valor_manual, subtotal, total,
	treinamento_data, treinamento_hora, treinamento_status,
	tipo_venda, comprovante,
	pagamento_confirmado, agenda_ok, qualidade_ok,
	observacoes`

type DealRepository struct {
	db *sql.DB
}

func NewDealRepository(db *sql.DB) *DealRepository {
	return &DealRepository{db: db}
}

func (r *DealRepository) Create(d *models.Deal) error {
	query := `
        INSERT INTO deals (` + dealColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6,
                $7, $8, $9, $10, $11,
                $12,
                $13, $14, $15,
                $16, $17, $18, $19,
                $20, $21, $22, $23,
                $24, $25, $26,
                $27, $28,
                $29, $30, $31,
                $32::jsonb)
    `
	obs, err := json.Marshal(d.Observacoes)
	if err != nil {
		return fmt.Errorf("serializar observações: %w", err)
	}
	_, err = r.db.Exec(query,
		d.ID, d.CreatedAt, nullInt(d.OwnerID), d.Owner, d.Status, d.Produto,
		d.Empresa, d.CNPJ, d.Responsavel, d.Whatsapp, d.Email,
		d.FormaPagamento,
		d.QtdConexoes, d.QtdUsuarios, d.PlataformaHabilitada,
		d.QtdUraCanais, d.QtdIaCanais, d.QtdApiOficial, d.LeadsValor,
		d.Desconto, d.ValorManual, d.Subtotal, d.Total,
		d.TreinamentoData, d.TreinamentoHora, d.TreinamentoStatus,
		d.TipoVenda, d.Comprovante,
		d.PagamentoConfirmado, d.AgendaOk, d.QualidadeOK,
		obs,
	)
	if err != nil {
		return fmt.Errorf("inserir venda: %w", err)
	}
	return nil
}

// GetByID devolve (nil, nil) quando a venda não existe.
func (r *DealRepository) GetByID(id string) (*models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`
	d, err := scanDeal(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar venda por id: %w", err)
	}
	return d, nil
}

// ListAll devolve todas as vendas, mais recentes primeiro.
func (r *DealRepository) ListAll() ([]*models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listar vendas: %w", err)
	}
	defer rows.Close()

	var deals []*models.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("ler venda: %w", err)
		}
		deals = append(deals, d)
	}
	return deals, rows.Err()
}

// Update regrava a linha inteira num único UPDATE: ou aplica tudo, ou nada.
func (r *DealRepository) Update(d *models.Deal) error {
	query := `
        UPDATE deals SET
            owner_id = $2, owner = $3, status = $4, produto = $5,
            empresa = $6, cnpj = $7, responsavel = $8, whatsapp = $9, email = $10,
            forma_pagamento = $11,
            qtd_conexoes = $12, qtd_usuarios = $13, plataforma_habilitada = $14,
            qtd_ura_canais = $15, qtd_ia_canais = $16, qtd_api_oficial = $17, leads_valor = $18,
            desconto = $19, valor_manual = $20, subtotal = $21, total = $22,
            treinamento_data = $23, treinamento_hora = $24, treinamento_status = $25,
            tipo_venda = $26, comprovante = $27,
            pagamento_confirmado = $28, agenda_ok = $29, qualidade_ok = $30,
            observacoes = $31::jsonb
        WHERE id = $1
    `
	obs, err := json.Marshal(d.Observacoes)
	if err != nil {
		return fmt.Errorf("serializar observações: %w", err)
	}
	res, err := r.db.Exec(query,
		d.ID,
		nullInt(d.OwnerID), d.Owner, d.Status, d.Produto,
		d.Empresa, d.CNPJ, d.Responsavel, d.Whatsapp, d.Email,
		d.FormaPagamento,
		d.QtdConexoes, d.QtdUsuarios, d.PlataformaHabilitada,
		d.QtdUraCanais, d.QtdIaCanais, d.QtdApiOficial, d.LeadsValor,
		d.Desconto, d.ValorManual, d.Subtotal, d.Total,
		d.TreinamentoData, d.TreinamentoHora, d.TreinamentoStatus,
		d.TipoVenda, d.Comprovante,
		d.PagamentoConfirmado, d.AgendaOk, d.QualidadeOK,
		obs,
	)
	if err != nil {
		return fmt.Errorf("atualizar venda: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("verificar atualização: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("venda %s não encontrada para atualizar", d.ID)
	}
	return nil
}

// Delete remove a venda e devolve o registro removido; (nil, nil) se não existe.
func (r *DealRepository) Delete(id string) (*models.Deal, error) {
	query := `DELETE FROM deals WHERE id = $1 RETURNING ` + dealColumns
	d, err := scanDeal(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("remover venda: %w", err)
	}
	return d, nil
}

func (r *DealRepository) CountDeals() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM deals`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDeal(row rowScanner) (*models.Deal, error) {
	d := &models.Deal{}
	var (
		ownerID   sql.NullInt64
		createdAt sql.NullTime
		obs       []byte
	)
	err := row.Scan(
		&d.ID, &createdAt, &ownerID, &d.Owner, &d.Status, &d.Produto,
		&d.Empresa, &d.CNPJ, &d.Responsavel, &d.Whatsapp, &d.Email,
		&d.FormaPagamento,
		&d.QtdConexoes, &d.QtdUsuarios, &d.PlataformaHabilitada,
		&d.QtdUraCanais, &d.QtdIaCanais, &d.QtdApiOficial, &d.LeadsValor,
		&d.Desconto, &d.ValorManual, &d.Subtotal, &d.Total,
		&d.TreinamentoData, &d.TreinamentoHora, &d.TreinamentoStatus,
		&d.TipoVenda, &d.Comprovante,
		&d.PagamentoConfirmado, &d.AgendaOk, &d.QualidadeOK,
		&obs,
	)
	if err != nil {
		return nil, err
	}
	if ownerID.Valid {
		d.OwnerID = int(ownerID.Int64)
	}
	if createdAt.Valid {
		d.CreatedAt = createdAt.Time
	}
	d.Observacoes = []models.Observacao{}
	if len(obs) > 0 {
		if err := json.Unmarshal(obs, &d.Observacoes); err != nil {
			return nil, fmt.Errorf("ler observações: %w", err)
		}
	}
	return d, nil
}

func nullInt(v int) interface{} {
	if v == 0 {
		return nil
	}
	return v
}
