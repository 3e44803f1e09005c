package authz

// Papéis da equipe. O controle aqui é consultivo (espelha o gating da UI);
// só as operações administrativas exigem papel de fato.
const (
	RoleVendedor    = "Vendedor"
	RoleSuporte     = "Suporte"
	RoleTreinamento = "Treinamento"
	RoleGerencia    = "Gerencia"
)

var Roles = []string{RoleVendedor, RoleSuporte, RoleTreinamento, RoleGerencia}

func IsValid(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

func IsGerencia(role string) bool {
	return role == RoleGerencia
}

// CanVendas — quem registra vendas na UI.
func CanVendas(role string) bool {
	return role == RoleVendedor || role == RoleGerencia
}

// CanQualidade — quem opera a etapa de qualidade.
func CanQualidade(role string) bool {
	return role == RoleSuporte || role == RoleGerencia
}

// CanTreinamento — quem agenda e conclui treinamentos.
func CanTreinamento(role string) bool {
	return role == RoleTreinamento || role == RoleGerencia
}
