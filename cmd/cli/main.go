package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/onboarding/infra/initializer"
	"github.com/amirasaad/onboarding/pkg/app"
	"github.com/amirasaad/onboarding/pkg/config"
	"github.com/amirasaad/onboarding/pkg/domain/registration"
	"github.com/amirasaad/onboarding/pkg/requestid"
	"github.com/amirasaad/onboarding/pkg/validation"
	"github.com/amirasaad/onboarding/webapi/account"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  validate <field> <value>   check a single field
  gen-id <DD-MM-YYYY>        generate a request id for a date of birth
  account-types              list supported account types
  get <request_id>           print a stored account request`

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		_, _ = fmt.Fprintln(stderr, usage)
		return 2
	}
	switch args[0] {
	case "validate":
		if len(args) < 2 {
			_, _ = fmt.Fprintln(stderr, "Usage: validate <field> <value>")
			return 2
		}
		return validate(stdout, args[1], strings.Join(args[2:], " "))
	case "gen-id":
		if len(args) != 2 {
			_, _ = fmt.Fprintln(stderr, "Usage: gen-id <DD-MM-YYYY>")
			return 2
		}
		return genID(stdout, stderr, args[1])
	case "account-types":
		for _, t := range registration.AccountTypes() {
			_, _ = fmt.Fprintln(stdout, t)
		}
		return 0
	case "get":
		if len(args) != 2 {
			_, _ = fmt.Fprintln(stderr, "Usage: get <request_id>")
			return 2
		}
		return get(stdout, stderr, args[1])
	default:
		_, _ = failColor.Fprintf(stderr, "unknown command %q\n", args[0])
		_, _ = fmt.Fprintln(stderr, usage)
		return 2
	}
}

func validate(w io.Writer, field, value string) int {
	res := validation.NewFieldValidator().Validate(field, value)
	if res.Valid {
		_, _ = okColor.Fprint(w, "✔ ")
		_, _ = fmt.Fprintf(w, "%s: %s\n", field, res.Message)
		return 0
	}
	_, _ = failColor.Fprint(w, "✘ ")
	_, _ = fmt.Fprintf(w, "%s: %s\n", field, res.Message)
	return 1
}

func genID(stdout, stderr io.Writer, dob string) int {
	d, ok := validation.ParseDate(dob)
	if !ok {
		_, _ = failColor.Fprintln(stderr, validation.MsgDOBFormat)
		return 1
	}
	_, _ = fmt.Fprintln(stdout, requestid.NewDefault().Generate(d))
	return 0
}

func get(stdout, stderr io.Writer, requestID string) int {
	cfg, err := config.Load(".env")
	if err != nil {
		_, _ = failColor.Fprintln(stderr, "Failed to load configuration:", err)
		return 1
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		_, _ = failColor.Fprintln(stderr, "Failed to initialize dependencies:", err)
		return 1
	}
	svc := app.New(deps, cfg).RegistrationService

	req, err := svc.GetByRequestID(context.Background(), requestID)
	if err != nil {
		_, _ = failColor.Fprintln(stderr, err)
		return 1
	}
	out, err := json.MarshalIndent(account.NewAccountResponse(req), "", "  ")
	if err != nil {
		_, _ = failColor.Fprintln(stderr, err)
		return 1
	}
	_, _ = dimColor.Fprintf(stdout, "# %s (%s)\n", req.RequestID, req.Status)
	_, _ = fmt.Fprintln(stdout, string(out))
	return 0
}
