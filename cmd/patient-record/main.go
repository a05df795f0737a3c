package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"patient-record-service/internal/config"
	"patient-record-service/internal/domain/dtos"
	logpkg "patient-record-service/internal/logger"
	"patient-record-service/internal/services"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// options are the command line settings of a single conversion.
type options struct {
	to          string
	in          string
	fhirVersion string
	newID       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.to, "to", "fhir", "Target format: 'fhir' (input is a patient document) or 'dto' (input is a FHIR Patient)")
	flag.StringVar(&opts.in, "in", "", "Input file (default: stdin)")
	flag.StringVar(&opts.fhirVersion, "fhir-version", "", "FHIR version for export, STU3 or DSTU2 (default: FHIR_VERSION)")
	flag.BoolVar(&opts.newID, "new-id", false, "Assign a random UUID to a patient whose id is empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logpkg.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.ServiceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	input := io.Reader(os.Stdin)
	if opts.in != "" {
		f, err := os.Open(opts.in)
		if err != nil {
			log.Fatal("Failed to open input", zap.String("path", opts.in), zap.Error(err))
		}
		defer f.Close()
		input = f
	}

	svc := services.NewPatientConversionService(cfg.FHIRVersion, log)
	if err := run(ctx, svc, opts, input, os.Stdout); err != nil {
		log.Error("Conversion failed", zap.String("to", opts.to), zap.Error(err))
		os.Exit(1)
	}
}

// run reads one document from in, converts it and writes the result to out.
func run(ctx context.Context, svc services.PatientConversionServiceContract, opts options, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var result []byte
	switch opts.to {
	case "fhir":
		var patient dtos.PatientDTO
		if err := json.Unmarshal(data, &patient); err != nil {
			return fmt.Errorf("decoding patient document: %w", err)
		}
		if opts.newID && patient.ID == "" {
			patient.ID = uuid.NewString()
		}
		result, err = svc.ExportFHIR(ctx, patient, opts.fhirVersion)
		if err != nil {
			return err
		}
	case "dto":
		patient, err := svc.ImportFHIR(ctx, data)
		if err != nil {
			return err
		}
		if result, err = json.MarshalIndent(patient, "", "  "); err != nil {
			return fmt.Errorf("encoding patient document: %w", err)
		}
	default:
		return fmt.Errorf("unknown target format %q, want 'fhir' or 'dto'", opts.to)
	}

	_, err = fmt.Fprintf(out, "%s\n", result)
	return err
}
