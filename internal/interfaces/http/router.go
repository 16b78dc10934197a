package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/ciclo"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/manutencao"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/processamento"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/relatorio"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/usecase"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/pkg/config"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	Cfg            *config.Config
	FuncionarioUC  *usecase.FuncionarioUseCase
	AusenciaUC     *usecase.AusenciaUseCase
	AjusteUC       *usecase.AjusteUseCase
	ConfiguracaoUC *usecase.ConfiguracaoUseCase
	PeriodoUC      *usecase.PeriodoUseCase
	ProcessarUC    *processamento.ProcessarPeriodoUseCase
	CicloUC        *ciclo.CicloPeriodoUseCase
	EspelhoUC      *relatorio.EspelhoUseCase
	ResetUC        *manutencao.ResetUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público; emissão direta só fora de produção)
	authHandler := NewAuthHandler(deps.Cfg)
	api.Post("/auth/token", authHandler.Token)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Cfg.JWT.Secret))

	// Funcionários
	funcionarios := protected.Group("/funcionarios")
	funcionarioHandler := NewFuncionarioHandler(deps.FuncionarioUC)
	funcionarios.Post("/", funcionarioHandler.Create)
	funcionarios.Get("/", funcionarioHandler.List)
	funcionarios.Get("/:matricula", funcionarioHandler.GetByMatricula)
	funcionarios.Put("/:matricula", funcionarioHandler.Update)
	funcionarios.Delete("/:matricula", funcionarioHandler.Delete)

	// Ausências
	ausenciaHandler := NewAusenciaHandler(deps.AusenciaUC)
	funcionarios.Get("/:matricula/ausencias", ausenciaHandler.ListByMatricula)
	ausencias := protected.Group("/ausencias")
	ausencias.Post("/", ausenciaHandler.Create)
	ausencias.Delete("/:id", ausenciaHandler.Delete)

	// Ajustes
	ajustes := protected.Group("/ajustes")
	ajusteHandler := NewAjusteHandler(deps.AjusteUC)
	ajustes.Post("/", ajusteHandler.Create)
	ajustes.Get("/", ajusteHandler.ListByPeriodo)
	ajustes.Delete("/:id", ajusteHandler.Delete)

	// Configuração global (escrita restrita a admin)
	configuracaoHandler := NewConfiguracaoHandler(deps.ConfiguracaoUC)
	protected.Get("/configuracao", configuracaoHandler.Get)
	protected.Put("/configuracao", RequireRole(RoleAdmin), configuracaoHandler.Save)

	// Períodos: ciclo completo + consultas + espelho
	periodos := protected.Group("/periodos")
	periodoHandler := NewPeriodoHandler(deps.ProcessarUC, deps.CicloUC, deps.PeriodoUC, deps.EspelhoUC)
	periodos.Post("/processar", periodoHandler.Processar)
	periodos.Get("/", periodoHandler.List)
	periodos.Get("/:id", periodoHandler.GetByID)
	periodos.Post("/:id/aprovar", RequireRole(RoleAdmin, RoleGestor), periodoHandler.Aprovar)
	periodos.Post("/:id/selar", RequireRole(RoleAdmin, RoleGestor), periodoHandler.Selar)
	periodos.Post("/:id/reabrir", RequireRole(RoleAdmin, RoleGestor), periodoHandler.Reabrir)
	periodos.Get("/:id/resultados", periodoHandler.Resultados)
	periodos.Get("/:id/espelho", periodoHandler.Espelho)

	// Manutenção destrutiva (apenas admin)
	manutencaoGroup := protected.Group("/manutencao", RequireRole(RoleAdmin))
	manutencaoHandler := NewManutencaoHandler(deps.ResetUC)
	manutencaoGroup.Delete("/funcionarios", manutencaoHandler.LimparFuncionarios)
	manutencaoGroup.Delete("/ausencias", manutencaoHandler.LimparAusencias)
	manutencaoGroup.Delete("/calculos", manutencaoHandler.LimparCalculos)
	manutencaoGroup.Delete("/ajustes/:periodo", manutencaoHandler.LimparAjustesPeriodo)
}
