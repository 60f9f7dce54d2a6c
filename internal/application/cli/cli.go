package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"go-weather/configs"
	"go-weather/internal/application/presenter"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/internal/infra/secrets"
	httpclient "go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Process exit codes, one per error class.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitConfig      = 2
	ExitAuth        = 3
	ExitNotFound    = 4
	ExitTransport   = 5
	ExitDecode      = 6
	ExitUsage       = 64
	ExitInterrupted = 130
)

type arguments struct {
	City       []string `arg:"" optional:"" name:"city" help:"Enter the city name."`
	Imperial   bool     `short:"i" help:"Display the temperature in imperial units."`
	Fahrenheit bool     `short:"f" help:"Same as --imperial."`
	Config     string   `short:"c" type:"path" placeholder:"FILE" help:"Secrets file holding the OpenWeather API key (default: secrets.ini beside the executable)."`
	Color      string   `enum:"auto,always,never" default:"auto" help:"Colorize the output (${enum})."`
	Verbose    bool     `short:"v" help:"Log request details to stderr."`
}

func (a arguments) units() entity.UnitSystem {
	if a.Imperial || a.Fahrenheit {
		return entity.Imperial
	}
	return entity.Metric
}

// Options configures a CLI. Zero values fall back to the process environment.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Terminal reports whether Stdout is an interactive terminal, used by --color=auto
	Terminal bool
	// BaseURL overrides the weather endpoint
	BaseURL   string
	Transport http.RoundTripper
}

type CLI struct {
	stdout    io.Writer
	stderr    io.Writer
	terminal  bool
	baseURL   string
	transport http.RoundTripper
}

func New(opts Options) *CLI {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.BaseURL == "" {
		opts.BaseURL = configs.Env.WeatherAPIURL
	}

	return &CLI{
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
		terminal:  opts.Terminal,
		baseURL:   opts.BaseURL,
		transport: opts.Transport,
	}
}

// NewFromOS builds a CLI writing to the process stdout and stderr.
// ANSI sequences on stdout go through go-colorable so they also render on Windows consoles.
func NewFromOS() *CLI {
	fd := os.Stdout.Fd()
	return New(Options{
		Stdout:   colorable.NewColorable(os.Stdout),
		Stderr:   os.Stderr,
		Terminal: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	})
}

type exitCode int

// Run parses argv, fetches the weather and prints it. It returns the process exit code and
// never exits by itself.
func (c *CLI) Run(ctx context.Context, argv []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			exit, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(exit)
		}
	}()

	var args arguments
	parser, err := kong.New(&args,
		kong.Name("weather"),
		kong.Description(msg.GetMessage("app.description")),
		kong.Writers(c.stdout, c.stderr),
		kong.Exit(func(code int) { panic(exitCode(code)) }),
	)
	if err != nil {
		fmt.Fprintln(c.stderr, msg.GetMessage("error.unexpected", err))
		return ExitError
	}

	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	if _, err := parser.Parse(argv); err != nil {
		fmt.Fprintln(c.stderr, msg.GetMessage("error.usage", err))
		return ExitUsage
	}

	c.configureLogging(args.Verbose)
	defer log.Sync()

	secretsPath := args.Config
	if secretsPath == "" {
		secretsPath = secrets.DefaultPath()
	}

	line, err := c.currentWeather(ctx, args, secretsPath)
	if err != nil {
		return c.report(ctx, err, secretsPath)
	}

	fmt.Fprint(c.stdout, line)
	return ExitOK
}

func (c *CLI) currentWeather(ctx context.Context, args arguments, secretsPath string) (string, error) {
	apiKey, err := secrets.LoadAPIKey(secretsPath)
	if err != nil {
		return "", err
	}

	query, err := weather.NewQuery(args.City, args.units(), apiKey)
	if err != nil {
		return "", err
	}

	gateway := api.NewWeatherGateway(httpclient.ClientOptions{
		DefaultHeaders: map[string]string{"User-Agent": configs.Env.ApplicationName},
		Transport:      c.transport,
		Logger:         httpclient.ZapLogger{RedactParams: []string{"appid"}},
	})
	useCase := weather.NewWeatherUseCase(c.baseURL, gateway)

	result, err := useCase.CurrentWeather(ctx, query)
	if err != nil {
		return "", err
	}

	view := presenter.NewWeatherPresenter(presenter.WithColor(c.useColor(args.Color)))
	return view.Render(*result, query.Units), nil
}

func (c *CLI) configureLogging(verbose bool) {
	level, err := zapcore.ParseLevel(configs.Env.LogLevel)
	if err != nil {
		level = zapcore.WarnLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	log.SetLevel(level)
}

func (c *CLI) useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
		return false
	}
	return c.terminal
}

// report prints one plain-language line for err and returns the matching exit code
func (c *CLI) report(ctx context.Context, err error, secretsPath string) int {
	log.Debug("weather lookup failed", zap.Error(err))

	var (
		configErr    *model.ConfigError
		transportErr *model.TransportError
		decodeErr    *model.DecodeError
		line         string
		code         int
	)

	switch {
	case errors.As(err, &configErr):
		line, code = msg.GetMessage("error.config", configErr.Key, secretsPath), ExitConfig
	case errors.Is(err, model.ErrUnauthorized):
		line, code = msg.GetMessage("error.auth"), ExitAuth
	case errors.Is(err, model.ErrLocationNotFound):
		line, code = msg.GetMessage("error.notfound"), ExitNotFound
	case ctx.Err() != nil:
		line, code = msg.GetMessage("error.interrupted"), ExitInterrupted
	case errors.As(err, &transportErr) && transportErr.StatusCode != 0:
		line, code = msg.GetMessage("error.transport.status", transportErr.StatusCode), ExitTransport
	case errors.As(err, &transportErr):
		line, code = msg.GetMessage("error.transport.network", transportErr.Err), ExitTransport
	case errors.As(err, &decodeErr):
		line, code = msg.GetMessage("error.decode"), ExitDecode
	default:
		line, code = msg.GetMessage("error.unexpected", err), ExitError
	}

	fmt.Fprintln(c.stderr, line)
	return code
}
