package commands

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
	"github.com/mamadbah2/herdmethane/internal/monitoring"
	"github.com/mamadbah2/herdmethane/internal/service/emissions"
	"github.com/mamadbah2/herdmethane/internal/service/reporting"
)

// ErrInvalidArguments indicates the command payload could not be parsed.
var ErrInvalidArguments = errors.New("invalid command arguments")

// ErrUnsupportedCommand indicates we do not yet support the requested command.
var ErrUnsupportedCommand = errors.New("unsupported command")

const (
	presetArgPrefix = "preset="
	chatChannel     = "chat"
)

// HelpText lists the supported commands.
const HelpText = `Methane calculator commands:
/methane <cattle> <type> <diet> <additive> [weight kg]
  e.g. /methane 100 dairy improved seaweed
/whatif <cattle> <type> <diet> [weight kg]
  ranks every additive for your herd
/options [preset]
  lists cattle types, diets and additives
Add preset=<name> to any command to use another preset.`

// Catalog resolves preset names to calculators.
type Catalog interface {
	Calculator(name string) (*emissions.Calculator, error)
	Names() []string
}

// Dispatcher executes parsed commands and renders the reply text.
type Dispatcher interface {
	HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error)
}

// Service implements the Dispatcher interface.
type Service struct {
	catalog Catalog
	logger  *zap.Logger
	now     func() time.Time
}

// NewService constructs a command dispatcher.
func NewService(catalog Catalog, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// HandleCommand runs the command against the requested preset and returns the reply.
func (s *Service) HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error) {
	presetName, args := splitPresetArg(cmd.Args)
	presetName = s.resolvePreset(presetName)

	s.logger.Debug("dispatching command",
		zap.String("command", string(cmd.Type)),
		zap.String("sender", sender),
		zap.Strings("args", args),
		zap.String("preset", presetName))
	monitoring.ChatCommandsTotal.WithLabelValues(string(cmd.Type)).Inc()

	switch cmd.Type {
	case models.CommandHelp:
		return HelpText, nil
	case models.CommandOptions:
		return s.options(presetName, args)
	case models.CommandMethane, models.CommandWhatIf:
		if err := ctx.Err(); err != nil {
			return "", err
		}
		calc, err := s.catalog.Calculator(presetName)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
		}
		if cmd.Type == models.CommandWhatIf {
			return s.whatIf(calc, args)
		}
		return s.compute(calc, args)
	default:
		return "", ErrUnsupportedCommand
	}
}

func (s *Service) compute(calc *emissions.Calculator, args []string) (string, error) {
	preset := calc.Preset()
	input, err := buildCalculationInput(preset, args)
	if err != nil {
		return "", err
	}

	start := s.now()
	result, err := calc.Compute(input)
	monitoring.ObserveCalculation("compute", chatChannel, monitoring.StatusFor(err), s.now().Sub(start))
	if err != nil {
		return "", err
	}

	if !calc.IsNoAdditive(input.Additive) {
		return reporting.FormatResult(result, false), nil
	}

	rows, err := calc.WhatIf(input.HerdProfile)
	if err != nil {
		return "", err
	}
	return reporting.FormatResult(result, true) + "\n\n" + reporting.FormatWhatIf(rows), nil
}

func (s *Service) whatIf(calc *emissions.Calculator, args []string) (string, error) {
	profile, rest, err := buildHerdProfile(calc.Preset(), args)
	if err != nil {
		return "", err
	}
	if err := applyWeight(&profile, rest); err != nil {
		return "", err
	}

	start := s.now()
	rows, err := calc.WhatIf(profile)
	monitoring.ObserveCalculation("what_if", chatChannel, monitoring.StatusFor(err), s.now().Sub(start))
	if err != nil {
		return "", err
	}
	return reporting.FormatWhatIf(rows), nil
}

func (s *Service) options(presetName string, args []string) (string, error) {
	names := []string{presetName}
	switch {
	case len(args) > 0:
		names = []string{s.resolvePreset(args[0])}
	case presetName == "":
		names = s.catalog.Names()
	}

	blocks := make([]string, 0, len(names))
	for _, name := range names {
		calc, err := s.catalog.Calculator(name)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
		}
		blocks = append(blocks, reporting.FormatOptions(calc.Preset()))
	}
	return strings.Join(blocks, "\n\n"), nil
}

// buildCalculationInput parses "<herd> <category> <diet> <additive> [weight]".
func buildCalculationInput(preset models.Preset, args []string) (models.CalculationInput, error) {
	profile, rest, err := buildHerdProfile(preset, args)
	if err != nil {
		return models.CalculationInput{}, err
	}
	if len(rest) == 0 {
		return models.CalculationInput{}, fmt.Errorf("%w: additive missing", ErrInvalidArguments)
	}

	additive, err := canonicalKey(preset.AdditiveReductions, rest[0], "additive")
	if err != nil {
		return models.CalculationInput{}, err
	}
	if err := applyWeight(&profile, rest[1:]); err != nil {
		return models.CalculationInput{}, err
	}

	return models.CalculationInput{HerdProfile: profile, Additive: additive}, nil
}

// buildHerdProfile parses "<herd> <category> <diet>" and returns the remaining args.
func buildHerdProfile(preset models.Preset, args []string) (models.HerdProfile, []string, error) {
	if len(args) < 3 {
		return models.HerdProfile{}, nil, fmt.Errorf("%w: expected number of cattle, type and diet", ErrInvalidArguments)
	}

	herd, err := strconv.Atoi(args[0])
	if err != nil {
		return models.HerdProfile{}, nil, fmt.Errorf("%w: number of cattle %q is not a whole number", ErrInvalidArguments, args[0])
	}
	if herd < 1 {
		return models.HerdProfile{}, nil, fmt.Errorf("%w: number of cattle must be greater than 0", ErrInvalidArguments)
	}

	category, err := canonicalKey(preset.EmissionFactors, args[1], "cattle type")
	if err != nil {
		return models.HerdProfile{}, nil, err
	}
	diet, err := canonicalKey(preset.DietReductions, args[2], "diet")
	if err != nil {
		return models.HerdProfile{}, nil, err
	}

	return models.HerdProfile{HerdSize: herd, Category: category, Diet: diet}, args[3:], nil
}

func applyWeight(profile *models.HerdProfile, rest []string) error {
	if len(rest) == 0 {
		return nil
	}
	if len(rest) > 1 {
		return fmt.Errorf("%w: unexpected %q", ErrInvalidArguments, strings.Join(rest[1:], " "))
	}

	weight, err := strconv.ParseFloat(strings.TrimSuffix(rest[0], "kg"), 64)
	if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return fmt.Errorf("%w: weight %q must be a positive number of kg", ErrInvalidArguments, rest[0])
	}
	profile.WeightKg = &weight
	return nil
}

// canonicalKey maps user text onto a configured key, ignoring case, so only configured
// options ever reach the calculator.
func canonicalKey(t models.Table, token, kind string) (string, error) {
	for _, key := range t.Keys() {
		if strings.EqualFold(key, token) {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: unknown %s %q (choose from %s)", ErrInvalidArguments, kind, token, strings.Join(t.Keys(), ", "))
}

// resolvePreset maps a lowercased chat token onto a configured preset name. Unknown names are
// returned unchanged so the catalog reports them.
func (s *Service) resolvePreset(name string) string {
	if name == "" {
		return name
	}
	for _, configured := range s.catalog.Names() {
		if strings.EqualFold(configured, name) {
			return configured
		}
	}
	return name
}

func splitPresetArg(args []string) (string, []string) {
	preset := ""
	rest := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(arg, presetArgPrefix) {
			preset = strings.TrimPrefix(arg, presetArgPrefix)
			continue
		}
		rest = append(rest, arg)
	}
	return preset, rest
}
