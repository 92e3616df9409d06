package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	bls "github.com/J-S-tech-PRO/bls-signatures"
	"github.com/J-S-tech-PRO/bls-signatures/internal/logger"
	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "blskeygen",
		Usage: "BLS12-381 key generation and signing",
		Description: `Generate BLS12-381 private keys from seed material or fresh system
randomness, derive the matching public keys, and produce G2 signatures
under the standard ciphersuites.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging",
				EnvVars: []string{"DEBUG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "generate",
				Aliases: []string{"gen"},
				Usage:   "Derive a private key from a seed or from fresh randomness",
				Description: `Derive a private key. With --seed the key is derived
deterministically from the given hex seed; without it the seed comes
from the system randomness source. With --out the key material is
written to a JSON file readable only by the owner; otherwise it is
printed to stdout.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "seed",
						Aliases: []string{"s"},
						Usage:   "Seed material (hex, at least 32 bytes, with or without 0x prefix)",
						EnvVars: []string{"BLS_KEYGEN_SEED"},
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Write a key file to this path instead of printing the key",
					},
				},
				Action: generateAction,
			},
			{
				Name:  "sign",
				Usage: "Sign a message in the G2 group",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "key",
						Aliases:  []string{"k"},
						Usage:    "Private key (hex, 32 bytes, with or without 0x prefix)",
						Required: true,
						EnvVars:  []string{"BLS_PRIVATE_KEY"},
					},
					&cli.StringFlag{
						Name:     "message",
						Aliases:  []string{"m"},
						Usage:    "Message to sign",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "scheme",
						Usage:   "Ciphersuite: basic, aug, pop or pop-proof",
						Value:   "pop",
						EnvVars: []string{"BLS_SCHEME"},
					},
				},
				Action: signAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// keyFile is the on-disk form written by generate --out.
type keyFile struct {
	PrivateKey  []byte `json:"private_key"`
	PublicKey   []byte `json:"public_key"`
	Fingerprint uint32 `json:"fingerprint"`
}

func setupLogger(c *cli.Context) (*zap.Logger, error) {
	return logger.NewLogger(&logger.Config{
		Debug: c.Bool("debug"),
	})
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return b, nil
}

func schemeTag(name string) (string, error) {
	switch name {
	case "basic":
		return bls.DSTBasic, nil
	case "aug":
		return bls.DSTMessageAugmentation, nil
	case "pop":
		return bls.DSTProofOfPossession, nil
	case "pop-proof":
		return bls.DSTPopProve, nil
	default:
		return "", fmt.Errorf("unknown scheme %q (expected basic, aug, pop or pop-proof)", name)
	}
}

func loadPrivateKey(c *cli.Context, l *zap.Logger) (*bls.PrivateKey, error) {
	if seedHex := c.String("seed"); seedHex != "" {
		seed, err := decodeHex(seedHex)
		if err != nil {
			return nil, fmt.Errorf("failed to parse seed: %w", err)
		}
		defer bls.ZeroBytes(seed)
		l.Sugar().Debugw("Deriving key from seed", "seedBytes", len(seed))
		sk, err := bls.KeyGen(seed)
		if err != nil {
			return nil, fmt.Errorf("failed to derive key: %w", err)
		}
		return sk, nil
	}

	l.Sugar().Debugw("Generating key from system randomness")
	sk, err := bls.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return sk, nil
}

func writeKeyFile(path string, raw []byte, pk *bls.G1Element) error {
	kf := keyFile{
		PrivateKey:  raw,
		PublicKey:   pk.Bytes(),
		Fingerprint: pk.Fingerprint(),
	}
	b, err := json.MarshalIndent(kf, "", "  ")
	if err != nil {
		return err
	}
	defer bls.ZeroBytes(b)
	return os.WriteFile(path, b, 0o600)
}

func generateAction(c *cli.Context) error {
	l, err := setupLogger(c)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	sk, err := loadPrivateKey(c, l)
	if err != nil {
		return err
	}
	defer sk.Destroy()

	pk, err := sk.G1Element()
	if err != nil {
		return fmt.Errorf("failed to derive public key: %w", err)
	}
	g2, err := sk.G2Element()
	if err != nil {
		return fmt.Errorf("failed to derive G2 element: %w", err)
	}

	l.Sugar().Infow("Derived key pair",
		"fingerprint", fmt.Sprintf("%08x", pk.Fingerprint()),
	)

	raw, err := sk.Serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize key: %w", err)
	}
	defer bls.ZeroBytes(raw)

	if out := c.String("out"); out != "" {
		if err := writeKeyFile(out, raw, pk); err != nil {
			return fmt.Errorf("failed to write key file: %w", err)
		}
		l.Sugar().Infow("Wrote key file", "path", out)
		return nil
	}

	fmt.Printf("Private Key: %x\n", raw)
	fmt.Printf("Public Key:  %s\n", pk)
	fmt.Printf("G2 Element:  %s\n", g2)
	fmt.Printf("Fingerprint: %08x\n", pk.Fingerprint())
	return nil
}

func signAction(c *cli.Context) error {
	l, err := setupLogger(c)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	keyBytes, err := decodeHex(c.String("key"))
	if err != nil {
		return fmt.Errorf("failed to parse private key: %w", err)
	}
	defer bls.ZeroBytes(keyBytes)

	sk, err := bls.PrivateKeyFromBytes(keyBytes, false)
	if err != nil {
		return fmt.Errorf("failed to load private key: %w", err)
	}
	defer sk.Destroy()

	dst, err := schemeTag(c.String("scheme"))
	if err != nil {
		return err
	}

	sig, err := sk.SignG2([]byte(c.String("message")), []byte(dst))
	if err != nil {
		return fmt.Errorf("failed to sign message: %w", err)
	}

	l.Sugar().Infow("Signed message",
		"scheme", c.String("scheme"),
		"messageBytes", len(c.String("message")),
	)

	fmt.Printf("Signature: %s\n", sig)
	return nil
}
