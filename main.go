package main

import "vaicrm/internal/app"

// @title           VAI CRM API
// @version         1.0
// @description     Backend do pipeline de vendas: cadastro de vendas, cálculo de valores, ciclo de vida do cliente e relatórios.
// @BasePath        /
func main() {
	app.Run()
}
