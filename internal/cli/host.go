package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/textshop/inlay/internal/application/port"
	"github.com/textshop/inlay/internal/application/usecase"
	"github.com/textshop/inlay/internal/bridge"
	"github.com/textshop/inlay/internal/config"
	"github.com/textshop/inlay/internal/domain/entity"
	"github.com/textshop/inlay/internal/infrastructure/cache"
	"github.com/textshop/inlay/internal/infrastructure/persistence/sqlite"
	"github.com/textshop/inlay/internal/infrastructure/webkit"
	"github.com/textshop/inlay/internal/logging"
)

// NewHostCmd builds the host command: a standalone process owning the UI
// thread and one widget, mostly useful for exercising the bridge outside an
// editor.
func NewHostCmd() *cobra.Command {
	var width, height int

	hostCmd := &cobra.Command{
		Use:   "host [url]",
		Short: "Run a standalone widget host",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			uri := ""
			if len(args) > 0 {
				uri = args[0]
			}
			return runHost(uri, width, height)
		},
	}

	hostCmd.Flags().IntVar(&width, "width", 1024, "Initial widget width")
	hostCmd.Flags().IntVar(&height, "height", 768, "Initial widget height")
	return hostCmd
}

func runHost(uri string, width, height int) error {
	manager, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.Logging.Level)
	logger := logging.New(logging.Config{
		Level:      level,
		Format:     cfg.Logging.Format,
		TimeFormat: logging.DefaultConfig().TimeFormat,
	})
	ctx := logging.WithContext(context.Background(), logger)
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = sqlite.Close(db) }()
	zoomRepo := sqlite.NewZoomRepository(db)
	downloadRepo := sqlite.NewDownloadRepository(db)

	webkit.Init()
	loop := webkit.NewMainLoop()
	pool := webkit.NewPool(ctx)
	window := webkit.NewWindow("inlay", width, height)
	downloader := webkit.NewDownloader(cfg.Downloads.Path, downloadRepo, nil)

	reg := bridge.NewRegistry()
	policy := bridge.NewPolicyState(policyStore(cfg))
	bus := &hostBus{downloader: downloader}
	b := bridge.New(reg, policy, bus, window, pool)
	pool.SetEventHandler(b.HandleEvent)

	navigateUC := usecase.NewNavigateUseCase(reg, pool, loop, zoomRepo, cfg.DefaultZoom)
	b.SetNavigationFinishedHook(navigateUC.OnNavigationFinished)
	widgetUC := usecase.NewWidgetUseCase(reg, pool, pool, loop)

	arbiter := bridge.NewFocusArbiter(reg, policy, pool, window, nil)
	forwarder := bridge.NewMouseForwarder(reg, window)
	pool.SetInputHandlers(
		func(ctx context.Context, surface entity.SurfaceID, key port.KeyEvent) {
			if model, ok := reg.WidgetBySurface(surface); ok {
				arbiter.ArbitrateKey(ctx, model.ID, key, nil)
			}
		},
		func(ctx context.Context, surface entity.SurfaceID, mouse port.MouseEvent) {
			if model, ok := reg.WidgetBySurface(surface); ok {
				forwarder.ForwardButton(ctx, model.ID, mouse)
			}
		},
	)

	manager.OnConfigChange(func(next *config.Config) {
		policy.Rebound(policyStore(next))
		downloader.SetDirectory(next.Downloads.Path)
	})
	manager.Watch()

	// Build the initial widget once the loop is running.
	loop.Invoke(func() {
		model, err := widgetUC.Create(ctx, usecase.CreateInput{URI: uri, Width: width, Height: height})
		if err != nil {
			logger.Error().Err(err).Msg("failed to create widget")
			loop.Quit()
			return
		}
		if _, err := widgetUC.Display(ctx, model.ID); err != nil {
			logger.Error().Err(err).Msg("failed to display widget")
			loop.Quit()
			return
		}
		if surface, ok := pool.Surface(model.Surface); ok {
			if s, ok := surface.(*webkit.Surface); ok {
				window.Embed(s)
			}
		}
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		loop.Quit()
		return nil
	})

	logger.Info().Str("url", logging.TruncateURL(uri, 60)).Msg("host started")
	loop.Run()
	stop()

	if err := g.Wait(); err != nil && err != context.Canceled {
		return fmt.Errorf("host shutdown: %w", err)
	}
	window.Close()
	return nil
}

// policyStore builds the policy cache backend from config; zero capacity
// means unbounded.
func policyStore(cfg *config.Config) port.Cache[string, bool] {
	if cfg.Policy.CacheCapacity <= 0 {
		return nil
	}
	return cache.NewLRU[string, bool](cfg.Policy.CacheCapacity)
}

// hostBus is the editor bus of the standalone host: script results are
// delivered inline and downloads go to the downloader. An editor embedding
// inlay queues these into its own main loop instead.
type hostBus struct {
	downloader *webkit.Downloader
}

func (b *hostBus) Publish(ctx context.Context, ev port.EditorEvent) {
	log := logging.FromContext(ctx)

	switch e := ev.(type) {
	case port.LoadChanged:
		log.Info().Uint64("widget_id", uint64(e.Widget)).Msg("load finished")
	case port.DownloadRequested:
		if _, err := b.downloader.HandleRequest(ctx, e); err != nil {
			log.Warn().Err(err).Str("url", logging.TruncateURL(e.URL, 60)).Msg("download hand-off failed")
		}
	case port.ScriptResult:
		if e.Callback != nil {
			e.Callback(e.Value)
		}
	}
}
