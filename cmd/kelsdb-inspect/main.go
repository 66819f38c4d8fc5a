// Command kelsdb-inspect is an operator diagnostic tool for a Key Event Log
// environment. It is not part of the storage engine's public surface (§6.3:
// "no CLI ... contributed by the core") — it is a standalone consumer of
// logdb, grounded on the teacher's internal/cli tree and kept out of the
// engine package itself.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/keridb/kelsdb/baser"
	"github.com/keridb/kelsdb/logdb"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var dbPath string

	root := &cobra.Command{
		Use:   "kelsdb-inspect",
		Short: "Inspect a Key Event Log environment",
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "head directory; the environment is opened at <db>/keri/db (required)")

	root.AddCommand(newInspectCommand(&dbPath))
	root.AddCommand(newEscrowsCommand(&dbPath))
	return root
}

func openLogger(dbPath string) (*logdb.Logger, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("--db is required")
	}
	// --db is passed as the head directory: with Name "." the environment
	// opened is the one at <db>/keri/db (<db>/TailDirPath), the layout
	// baser.Open resolves for a non-temporary instance.
	return logdb.Open(baser.Config{HeadDirPath: dbPath, Name: "."})
}

func newInspectCommand(dbPath *string) *cobra.Command {
	var pre string
	var dig string
	var sn uint64

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print evts/sigs/rcts/kels state for a prefix's digest- and sn-addressed entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pre == "" {
				return fmt.Errorf("--pre is required")
			}
			if dig == "" {
				return fmt.Errorf("--dig is required")
			}
			runID := uuid.NewString()
			lg, err := openLogger(*dbPath)
			if err != nil {
				return err
			}
			defer lg.Close()

			dgKey, err := logdb.DgKey([]byte(pre), []byte(dig))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run=%s pre=%s dig=%s\n", runID, pre, dig)

			_, present, err := lg.GetEvt(dgKey)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "evts. present=%t\n", present)

			nSigs, err := lg.CntSigs(dgKey)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "sigs. count=%d\n", nSigs)

			nRcts, err := lg.CntRcts(dgKey)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "rcts. count=%d\n", nRcts)

			snKey, err := logdb.SnKeyUint64([]byte(pre), sn)
			if err != nil {
				return err
			}
			nKes, err := lg.CntKes(snKey)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "kels. sn=%d count=%d\n", sn, nKes)
			return nil
		},
	}
	cmd.Flags().StringVar(&pre, "pre", "", "identifier prefix")
	cmd.Flags().StringVar(&dig, "dig", "", "event digest")
	cmd.Flags().Uint64Var(&sn, "sn", 0, "sequence number to inspect in kels.")
	return cmd
}

func newEscrowsCommand(dbPath *string) *cobra.Command {
	var pre string

	cmd := &cobra.Command{
		Use:   "escrows",
		Short: "Dump the four escrow logs (pses./ooes./dels./ldes.) at sn 0 for a prefix, in insertion order",
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := openLogger(*dbPath)
			if err != nil {
				return err
			}
			defer lg.Close()

			key, err := logdb.SnKeyUint64([]byte(pre), 0)
			if err != nil {
				return err
			}

			sections := []struct {
				name string
				get  func([]byte) ([][]byte, error)
			}{
				{"pses.", lg.GetPses},
				{"ooes.", lg.GetOoes},
				{"dels.", lg.GetDes},
				{"ldes.", lg.GetLdes},
			}
			for _, section := range sections {
				vals, getErr := section.get(key)
				if getErr != nil {
					return getErr
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s sn=0 count=%d\n", section.name, len(vals))
				for _, v := range vals {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", v)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pre, "pre", "", "identifier prefix")
	return cmd
}
