package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/ciclo"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/manutencao"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/processamento"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/relatorio"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/usecase"
	infrapdf "github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/infrastructure/pdf"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/interfaces/http"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/pkg/config"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	funcionarioRepo := postgres.NewFuncionarioRepository(pool)
	ausenciaRepo := postgres.NewAusenciaRepository(pool)
	ajusteRepo := postgres.NewAjusteRepository(pool)
	configuracaoRepo := postgres.NewConfiguracaoRepository(pool)
	periodoRepo := postgres.NewPeriodoRepository(pool)
	resultadoRepo := postgres.NewResultadoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	funcionarioUC := usecase.NewFuncionarioUseCase(funcionarioRepo)
	ausenciaUC := usecase.NewAusenciaUseCase(ausenciaRepo, funcionarioRepo)
	ajusteUC := usecase.NewAjusteUseCase(ajusteRepo, funcionarioRepo, periodoRepo)
	configuracaoUC := usecase.NewConfiguracaoUseCase(configuracaoRepo)
	periodoUC := usecase.NewPeriodoUseCase(periodoRepo, resultadoRepo)

	processarUC := processamento.NewProcessarPeriodoUseCase(
		periodoRepo, configuracaoRepo, funcionarioRepo, ausenciaRepo, ajusteRepo,
		txRunner, log,
	)
	cicloUC := ciclo.NewCicloPeriodoUseCase(periodoRepo, log)
	resetUC := manutencao.NewResetUseCase(
		funcionarioRepo, ausenciaRepo, ajusteRepo, periodoRepo, resultadoRepo, log,
	)

	// PDF: espelho do período para conferência e auditoria
	espelhoGenerator := infrapdf.NewMarotoEspelhoGenerator()
	espelhoUC := relatorio.NewEspelhoUseCase(periodoRepo, resultadoRepo, espelhoGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestão de Benefícios API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Cfg:            cfg,
		FuncionarioUC:  funcionarioUC,
		AusenciaUC:     ausenciaUC,
		AjusteUC:       ajusteUC,
		ConfiguracaoUC: configuracaoUC,
		PeriodoUC:      periodoUC,
		ProcessarUC:    processarUC,
		CicloUC:        cicloUC,
		EspelhoUC:      espelhoUC,
		ResetUC:        resetUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
