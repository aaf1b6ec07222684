package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sebamiro/randomorg"
)

// replacement maps a --no-replacement flag onto the service parameter,
// which defaults to true.
func replacement(no bool) *bool {
	if no {
		return randomorg.Bool(false)
	}
	return nil
}

var (
	integersCount         int
	integersMin           int
	integersMax           int
	integersBase          int
	integersNoReplacement bool

	integersCmd = &cobra.Command{
		Use:   "integers",
		Short: "Generate random integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			data, info, err := client.GenerateIntegers(integersCount, integersMin, integersMax,
				randomorg.IntegerOptions{Replacement: replacement(integersNoReplacement), Base: integersBase})
			if err != nil {
				return fmt.Errorf("failed to generate integers: %w", err)
			}
			logQuota(info)
			for _, n := range data {
				fmt.Println(n)
			}
			return nil
		},
	}
)

var (
	sequencesCount         int
	sequencesLength        int
	sequencesMin           int
	sequencesMax           int
	sequencesNoReplacement bool

	sequencesCmd = &cobra.Command{
		Use:   "sequences",
		Short: "Generate sequences of random integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			data, info, err := client.GenerateIntegerSequences(sequencesCount, sequencesLength, sequencesMin, sequencesMax,
				randomorg.SequenceOptions{Replacement: replacement(sequencesNoReplacement)})
			if err != nil {
				return fmt.Errorf("failed to generate integer sequences: %w", err)
			}
			logQuota(info)
			for _, seq := range data {
				for i, n := range seq {
					if i > 0 {
						fmt.Print(" ")
					}
					fmt.Print(n)
				}
				fmt.Println()
			}
			return nil
		},
	}
)

var (
	decimalsCount         int
	decimalsPlaces        int
	decimalsNoReplacement bool

	decimalsCmd = &cobra.Command{
		Use:   "decimals",
		Short: "Generate random decimal fractions in [0,1)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			data, info, err := client.GenerateDecimalFractions(decimalsCount, decimalsPlaces,
				randomorg.DecimalFractionOptions{Replacement: replacement(decimalsNoReplacement)})
			if err != nil {
				return fmt.Errorf("failed to generate decimal fractions: %w", err)
			}
			logQuota(info)
			for _, f := range data {
				fmt.Println(f)
			}
			return nil
		},
	}
)

var (
	gaussiansCount  int
	gaussiansMean   float64
	gaussiansStdDev float64
	gaussiansDigits int

	gaussiansCmd = &cobra.Command{
		Use:   "gaussians",
		Short: "Generate random numbers from a Gaussian distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			data, info, err := client.GenerateGaussians(gaussiansCount, gaussiansMean, gaussiansStdDev, gaussiansDigits)
			if err != nil {
				return fmt.Errorf("failed to generate gaussians: %w", err)
			}
			logQuota(info)
			for _, f := range data {
				fmt.Println(f)
			}
			return nil
		},
	}
)

var (
	stringsCount         int
	stringsLength        int
	stringsCharacters    string
	stringsNoReplacement bool

	stringsCmd = &cobra.Command{
		Use:   "strings",
		Short: "Generate random strings",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			data, info, err := client.GenerateStrings(stringsCount, stringsLength, stringsCharacters,
				randomorg.StringOptions{Replacement: replacement(stringsNoReplacement)})
			if err != nil {
				return fmt.Errorf("failed to generate strings: %w", err)
			}
			logQuota(info)
			for _, s := range data {
				fmt.Println(s)
			}
			return nil
		},
	}
)

var (
	uuidsCount int

	uuidsCmd = &cobra.Command{
		Use:   "uuids",
		Short: "Generate random version-4 UUIDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			data, info, err := client.GenerateUUIDs(uuidsCount)
			if err != nil {
				return fmt.Errorf("failed to generate uuids: %w", err)
			}
			logQuota(info)
			for _, u := range data {
				fmt.Println(u)
			}
			return nil
		},
	}
)

var (
	blobsCount  int
	blobsSize   int
	blobsFormat string

	blobsCmd = &cobra.Command{
		Use:   "blobs",
		Short: "Generate random blobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			data, info, err := client.GenerateBlobs(blobsCount, blobsSize,
				randomorg.BlobOptions{Format: blobsFormat})
			if err != nil {
				return fmt.Errorf("failed to generate blobs: %w", err)
			}
			logQuota(info)
			for _, b := range data {
				fmt.Println(b)
			}
			return nil
		},
	}
)

func init() {
	integersCmd.Flags().IntVarP(&integersCount, "count", "n", 10, "how many values to generate")
	integersCmd.Flags().IntVar(&integersMin, "min", 1, "lower bound, inclusive")
	integersCmd.Flags().IntVar(&integersMax, "max", 100, "upper bound, inclusive")
	integersCmd.Flags().IntVar(&integersBase, "base", 0, "base of the numbers: 2, 8, 10 or 16")
	integersCmd.Flags().BoolVar(&integersNoReplacement, "no-replacement", false, "pick every value at most once")

	sequencesCmd.Flags().IntVarP(&sequencesCount, "count", "n", 10, "how many sequences to generate")
	sequencesCmd.Flags().IntVar(&sequencesLength, "length", 10, "length of each sequence")
	sequencesCmd.Flags().IntVar(&sequencesMin, "min", 1, "lower bound, inclusive")
	sequencesCmd.Flags().IntVar(&sequencesMax, "max", 100, "upper bound, inclusive")
	sequencesCmd.Flags().BoolVar(&sequencesNoReplacement, "no-replacement", false, "pick every value at most once")

	decimalsCmd.Flags().IntVarP(&decimalsCount, "count", "n", 10, "how many values to generate")
	decimalsCmd.Flags().IntVar(&decimalsPlaces, "places", 8, "decimal places")
	decimalsCmd.Flags().BoolVar(&decimalsNoReplacement, "no-replacement", false, "pick every value at most once")

	gaussiansCmd.Flags().IntVarP(&gaussiansCount, "count", "n", 10, "how many values to generate")
	gaussiansCmd.Flags().Float64Var(&gaussiansMean, "mean", 0, "mean of the distribution")
	gaussiansCmd.Flags().Float64Var(&gaussiansStdDev, "std-dev", 1, "standard deviation of the distribution")
	gaussiansCmd.Flags().IntVar(&gaussiansDigits, "digits", 6, "significant digits")

	stringsCmd.Flags().IntVarP(&stringsCount, "count", "n", 10, "how many strings to generate")
	stringsCmd.Flags().IntVar(&stringsLength, "length", 8, "length of each string")
	stringsCmd.Flags().StringVar(&stringsCharacters, "characters", "abcdefghijklmnopqrstuvwxyz", "alphabet to draw from")
	stringsCmd.Flags().BoolVar(&stringsNoReplacement, "no-replacement", false, "pick every value at most once")

	uuidsCmd.Flags().IntVarP(&uuidsCount, "count", "n", 10, "how many values to generate")

	blobsCmd.Flags().IntVarP(&blobsCount, "count", "n", 10, "how many blobs to generate")
	blobsCmd.Flags().IntVar(&blobsSize, "size", 128, "size of each blob in bits, multiple of 8")
	blobsCmd.Flags().StringVar(&blobsFormat, "format", randomorg.BlobFormatBase64, "blob format: base64 or hex")

	rootCmd.AddCommand(integersCmd, sequencesCmd, decimalsCmd, gaussiansCmd, stringsCmd, uuidsCmd, blobsCmd)
}
