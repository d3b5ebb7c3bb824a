package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/postpilot/postpilot/internal/adcopy"
	"github.com/postpilot/postpilot/internal/config"
	"github.com/postpilot/postpilot/internal/observability"
)

var (
	adInput   string
	adFlags   adOverrides
	adKeyword []string
	adJSON    bool
)

var adCmd = &cobra.Command{
	Use:   "ad <google|meta|linkedin|youtube>",
	Short: "Generate ad copy for one platform",
	Long: `Generate ad copy from the request JSON given with --in (use "-" for stdin).
Flags override fields of the request; business name, category and landing URL
fall back to the --config file.`,
	Example: `  postpilot ad google --business-name "Acme Bakery" --product "sourdough bread" --landing-url https://acme.example.com
  postpilot ad meta --in meta.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAd,
}

// adOverrides are the request fields settable from the command line.
type adOverrides struct {
	BusinessName string
	Category     string
	Product      string
	LandingURL   string
	Audience     string
	Objective    string
	Offer        string
	TargetRole   string
	Industry     string
	VideoSeconds int
	Keywords     []string
}

func init() {
	f := adCmd.Flags()
	f.StringVar(&adInput, "in", "", "Request JSON file, - for stdin")
	f.StringVar(&adFlags.BusinessName, "business-name", "", "Business, company or channel name")
	f.StringVar(&adFlags.Category, "category", "", "Business category, e.g. saas or restaurant")
	f.StringVar(&adFlags.Product, "product", "", "Product or service being advertised")
	f.StringVar(&adFlags.LandingURL, "landing-url", "", "Landing page URL (google)")
	f.StringVar(&adFlags.Audience, "audience", "", "Target audience (meta, youtube)")
	f.StringVar(&adFlags.Objective, "objective", "", "Campaign objective (meta, linkedin)")
	f.StringVar(&adFlags.Offer, "offer", "", "Promotional offer (meta)")
	f.StringVar(&adFlags.TargetRole, "target-role", "", "Target job role (linkedin)")
	f.StringVar(&adFlags.Industry, "industry", "", "Target industry (linkedin)")
	f.IntVar(&adFlags.VideoSeconds, "video-seconds", 0, "Video length in seconds (youtube)")
	f.StringSliceVar(&adKeyword, "keyword", nil, "Search keyword, repeatable (google)")
	f.BoolVar(&adJSON, "json", false, "Print JSON instead of a table")
	rootCmd.AddCommand(adCmd)
}

func runAd(cmd *cobra.Command, args []string) error {
	platform, err := adcopy.ParsePlatform(args[0])
	if err != nil {
		return err
	}
	req, err := adcopy.NewRequest(platform)
	if err != nil {
		return err
	}

	if adInput != "" {
		if err := decodeRequest(adInput, cmd.InOrStdin(), req); err != nil {
			return err
		}
	}

	defaults, err := loadDefaults()
	if err != nil {
		return err
	}
	o := adFlags
	o.Keywords = adKeyword
	applyAdOverrides(req, o, defaults)

	ad, err := adcopy.Generate(req)
	if err != nil {
		return err
	}
	if adJSON {
		return writeJSON(cmd.OutOrStdout(), ad)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintAdCopy(ad)
	return nil
}

func decodeRequest(path string, stdin io.Reader, v any) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse request JSON: %w", err)
	}
	return nil
}

// applyAdOverrides sets request fields from flags, then fills what is still
// empty from the config defaults.
func applyAdOverrides(req adcopy.Request, o adOverrides, defaults config.Config) {
	set := func(dst *string, flag, fallback string) {
		switch {
		case flag != "":
			*dst = flag
		case *dst == "":
			*dst = fallback
		}
	}
	category := func(dst *adcopy.BusinessCategory) {
		switch {
		case o.Category != "":
			*dst = adcopy.ParseCategory(o.Category)
		case *dst == adcopy.CategoryOther && defaults.Category != "":
			*dst = adcopy.ParseCategory(defaults.Category)
		}
	}

	switch r := req.(type) {
	case *adcopy.GoogleRequest:
		set(&r.BusinessName, o.BusinessName, defaults.BusinessName)
		category(&r.Category)
		set(&r.Product, o.Product, "")
		set(&r.LandingURL, o.LandingURL, defaults.LandingURL)
		if len(o.Keywords) > 0 {
			r.Keywords = o.Keywords
		}
	case *adcopy.MetaRequest:
		set(&r.BusinessName, o.BusinessName, defaults.BusinessName)
		category(&r.Category)
		set(&r.Product, o.Product, "")
		set(&r.TargetAudience, o.Audience, defaults.Audience)
		set(&r.Objective, o.Objective, "")
		set(&r.Offer, o.Offer, "")
	case *adcopy.LinkedInRequest:
		set(&r.CompanyName, o.BusinessName, defaults.BusinessName)
		category(&r.Category)
		set(&r.Product, o.Product, "")
		set(&r.TargetRole, o.TargetRole, "")
		set(&r.Industry, o.Industry, "")
		set(&r.Objective, o.Objective, "")
	case *adcopy.YouTubeRequest:
		set(&r.ChannelName, o.BusinessName, defaults.BusinessName)
		category(&r.Category)
		set(&r.Product, o.Product, "")
		set(&r.TargetAudience, o.Audience, defaults.Audience)
		if o.VideoSeconds != 0 {
			r.VideoSeconds = o.VideoSeconds
		}
	}
}
