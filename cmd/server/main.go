package main

import (
	"context"
	"log"
	"time"

	httpadapter "storyforge/internal/adapter/http"
	metricsinmem "storyforge/internal/adapter/metrics/inmemory"
	"storyforge/internal/adapter/notify"
	outcomestatic "storyforge/internal/adapter/outcome/static"
	gormrepo "storyforge/internal/adapter/repo/gorm"
	"storyforge/internal/adapter/repo/memory"
	"storyforge/internal/app/action"
	"storyforge/internal/app/assist"
	"storyforge/internal/app/beat"
	"storyforge/internal/app/ports"
	"storyforge/internal/app/requirement"
	"storyforge/internal/app/resolve"
	"storyforge/internal/app/shared/keylock"
	"storyforge/internal/config"

	"github.com/cloudwego/hertz/pkg/app/server"
)

type backends struct {
	tx       ports.TxManager
	actions  ports.ActionRepository
	plots    ports.PlotRepository
	beats    ports.BeatRepository
	ledger   ports.ParticipantLedger
	armies   ports.ArmyDirectory
	orgs     ports.OrgDirectory
	episodes ports.EpisodeDirectory
	traits   ports.TraitDirectory
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	b := mustBuildBackends(cfg)
	outcomes := mustBuildOutcomeTables(cfg)
	notifier := notify.NewLogSink()
	kpiRecorder := metricsinmem.NewRecorder()
	locks := keylock.New()

	actionUC := action.UseCase{
		TxManager: b.tx,
		Locks:     locks,
		Actions:   b.actions,
		Plots:     b.plots,
		Ledger:    b.ledger,
		Episodes:  b.episodes,
		Notifier:  notifier,
		Metrics:   kpiRecorder,
		Now:       time.Now,
	}

	h := httpadapter.Handler{
		ActionUC: actionUC,
		AssistUC: assist.UseCase{
			TxManager: b.tx,
			Locks:     locks,
			Actions:   b.actions,
			Plots:     b.plots,
			Ledger:    b.ledger,
			Orgs:      b.orgs,
			Episodes:  b.episodes,
			Notifier:  notifier,
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		RequirementUC: requirement.UseCase{
			TxManager: b.tx,
			Locks:     locks,
			Actions:   b.actions,
			Plots:     b.plots,
			Ledger:    b.ledger,
			Armies:    b.armies,
			Beats:     b.beats,
			Notifier:  notifier,
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		ResolveUC: resolve.UseCase{
			TxManager: b.tx,
			Locks:     locks,
			Actions:   b.actions,
			Traits:    b.traits,
			Outcomes:  outcomes,
			Metrics:   kpiRecorder,
		},
		BeatUC: beat.UseCase{
			TxManager: b.tx,
			Actions:   b.actions,
			Plots:     b.plots,
			Beats:     b.beats,
			Episodes:  b.episodes,
			Publisher: actionUC,
			Notifier:  notifier,
			Now:       time.Now,
		},
		KPI: kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.ListenAddr))
	h.RegisterRoutes(s)

	log.Printf("storyforge server listening on %s", cfg.ListenAddr)
	s.Spin()
}

func mustBuildBackends(cfg config.Config) backends {
	if cfg.DBDSN == "" {
		log.Println("no STORYFORGE_DB_DSN set, using in-memory store")
		store := memory.NewStore()
		return backends{
			tx:       memory.NewTxManager(store),
			actions:  memory.NewActionRepo(store),
			plots:    memory.NewPlotRepo(store),
			beats:    memory.NewBeatRepo(store),
			ledger:   memory.NewLedgerRepo(store),
			armies:   memory.NewArmyRepo(store),
			orgs:     memory.NewOrgRepo(store),
			episodes: memory.NewEpisodeRepo(store),
			traits:   memory.NewTraitRepo(store),
		}
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return backends{
		tx:       gormrepo.NewTxManager(db),
		actions:  gormrepo.NewActionRepo(db),
		plots:    gormrepo.NewPlotRepo(db),
		beats:    gormrepo.NewBeatRepo(db),
		ledger:   gormrepo.NewLedgerRepo(db),
		armies:   gormrepo.NewArmyRepo(db),
		orgs:     gormrepo.NewOrgRepo(db),
		episodes: gormrepo.NewEpisodeRepo(db),
		traits:   gormrepo.NewTraitRepo(db),
	}
}

func mustBuildOutcomeTables(cfg config.Config) *outcomestatic.Tables {
	if cfg.OutcomePath == "" {
		return outcomestatic.Default()
	}
	t, err := outcomestatic.Load(cfg.OutcomePath)
	if err != nil {
		log.Fatalf("load outcome tables: %v", err)
	}
	return t
}
