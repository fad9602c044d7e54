package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	xwing "github.com/pqforge/xwing-go"
)

func encapCmd() *cobra.Command {
	var pubPath, ctPath string

	cmd := &cobra.Command{
		Use:   "encap",
		Short: "Encapsulate to a public key and print the shared secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := readHexFile(pubPath, xwing.PublicKeySize, "public key")
			if err != nil {
				return err
			}
			ct, ss, err := xwing.Encapsulate(pub)
			if err != nil {
				return err
			}
			if err := writeHexFile(ctPath, ct, 0o644); err != nil {
				return err
			}
			fmt.Printf("%x\n", ss)
			return nil
		},
	}

	cmd.Flags().StringVar(&pubPath, "pub", "xwing.pub", "path to the encoded public key")
	cmd.Flags().StringVar(&ctPath, "ct", "xwing.ct", "output path for the ciphertext")
	return cmd
}

func decapCmd() *cobra.Command {
	var seedPath, ctPath string

	cmd := &cobra.Command{
		Use:   "decap",
		Short: "Decapsulate a ciphertext and print the shared secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := readHexFile(seedPath, xwing.SeedSize, "seed")
			if err != nil {
				return err
			}
			ct, err := readHexFile(ctPath, xwing.CiphertextSize, "ciphertext")
			if err != nil {
				return err
			}
			sk, err := xwing.ParsePrivateKey(seed)
			if err != nil {
				return err
			}
			defer sk.Zeroize()

			ss, err := xwing.Decapsulate(sk, ct)
			if err != nil {
				return err
			}
			fmt.Printf("%x\n", ss)
			return nil
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "xwing.seed", "path to the private key seed")
	cmd.Flags().StringVar(&ctPath, "ct", "xwing.ct", "path to the ciphertext")
	return cmd
}
