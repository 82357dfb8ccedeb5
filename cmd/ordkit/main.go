package main

import (
	"bufio"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ipfs/go-cid"

	"openreaction.dev/ordkit/chem"
	"openreaction.dev/ordkit/dataset"
	"openreaction.dev/ordkit/keys"
	"openreaction.dev/ordkit/policy"
	"openreaction.dev/ordkit/record"
	"openreaction.dev/ordkit/report"
	"openreaction.dev/ordkit/storage"
	"openreaction.dev/ordkit/storage/casconfig"
	"openreaction.dev/ordkit/storage/casregistry"
	"openreaction.dev/ordkit/validation"

	_ "openreaction.dev/ordkit/storage/grpccas"
	_ "openreaction.dev/ordkit/storage/ipfs"
	_ "openreaction.dev/ordkit/storage/localfs"
	_ "openreaction.dev/ordkit/storage/memstore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "canon":
		return cmdCanon(args[1:], out, errOut)
	case "record":
		return cmdRecord(args[1:], out, errOut)
	case "validate":
		return cmdValidate(args[1:], out, errOut)
	case "put":
		return cmdPut(args[1:], out, errOut)
	case "get":
		return cmdGet(args[1:], out, errOut)
	case "key":
		return cmdKey(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "ordkit: reaction record CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  ordkit canon <smiles>")
	fmt.Fprintln(w, "  ordkit record cid <file>")
	fmt.Fprintln(w, "  ordkit record parse <file>")
	fmt.Fprintln(w, "  ordkit record render [--record-id <id>] [--username <u>] [--created <RFC3339>] [--seed-hex <64hex> | --signer <name> [--signer-role <role>] | --key-file <path>] <pairs-file>")
	fmt.Fprintln(w, "  ordkit validate [--policy <file>] [--validator-id <id>] [--validated-at <RFC3339>] [--seed-hex <64hex>] <record-file>")
	fmt.Fprintln(w, "  ordkit put (--backend <name> | --cas-config <file>) [backend flags] <record-file>")
	fmt.Fprintln(w, "  ordkit get (--backend <name> | --cas-config <file>) [backend flags] <cid>")
	fmt.Fprintln(w, "  ordkit key init --name <name> [--seed-hex <64hex>] [--force]")
	fmt.Fprintln(w, "  ordkit key derive --from <name> --role <role> [--force]")
	fmt.Fprintln(w, "  ordkit key list")
	fmt.Fprintln(w, "  ordkit key export --name <name> [--role <role>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - pairs-file holds flattened reaction fields, one 'Key: Value' line each")
	fmt.Fprintln(w, "  - --seed-hex must be 32 bytes (64 hex chars) ed25519 seed")
	fmt.Fprintln(w, "  - keys are stored under ~/.ordkit/keys/<name> (0600 private key files)")
	fmt.Fprintln(w, "  - record render writes canonical record bytes to stdout (no trailing newline)")
	fmt.Fprintln(w, "  - validate writes a canonical validation report to stdout; exit 1 on failed validation")
	fmt.Fprintln(w, "  - put validates the record's reaction, stores the canonical bytes in the selected CAS backend and prints the CID")
}

func cmdCanon(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("canon", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: ordkit canon <smiles>")
		return 2
	}
	canon, err := chem.Canonicalize(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid SMILES: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, canon)
	return 0
}

func cmdRecord(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: ordkit record <subcommand> ...")
		fmt.Fprintln(errOut, "subcommands: cid, parse, render")
		return 2
	}
	switch args[0] {
	case "cid":
		return cmdRecordCID(args[1:], out, errOut)
	case "parse":
		return cmdRecordParse(args[1:], out, errOut)
	case "render":
		return cmdRecordRender(args[1:], out, errOut)
	default:
		fmt.Fprintf(errOut, "unknown record subcommand: %s\n", args[0])
		return 2
	}
}

func cmdRecordCID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("record cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: ordkit record cid <file>")
		return 2
	}
	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read record: %v\n", err)
		return 1
	}
	rec, err := record.Parse(b)
	if err != nil {
		fmt.Fprintf(errOut, "invalid record: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, rec.CID())
	return 0
}

func cmdRecordParse(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("record parse", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: ordkit record parse <file>")
		return 2
	}
	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read record: %v\n", err)
		return 1
	}
	rec, err := record.Parse(b)
	if err != nil {
		fmt.Fprintf(errOut, "invalid record: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "CID: %s\n", rec.CID())
	if id := rec.RecordID(); id != "" {
		fmt.Fprintf(out, "Record-Id: %s\n", id)
	}
	if created := rec.Created(); created != "" {
		fmt.Fprintf(out, "Created: %s\n", created)
	}
	if rec.Signed() {
		if verr := rec.Verify(); verr != nil {
			fmt.Fprintf(out, "Signature: INVALID (%v)\n", verr)
			return 1
		}
		fmt.Fprintf(out, "Signature: valid (%s)\n", rec.SignatureAlg())
	} else {
		fmt.Fprintln(out, "Signature: none")
	}
	return 0
}

func cmdRecordRender(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("record render", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var recordID string
	var username string
	var created string
	var seedHex string
	var signerName string
	var signerRole string
	var keyFile string

	fs.StringVar(&recordID, "record-id", "", "Record ID (ord-<32 hex>); generated when empty")
	fs.StringVar(&username, "username", "", "PROVENANCE Username")
	fs.StringVar(&created, "created", "", "META Created timestamp (RFC3339; defaults to now UTC)")
	fs.StringVar(&seedHex, "seed-hex", "", "ed25519 seed as 64 hex chars (signs the record)")
	fs.StringVar(&signerName, "signer", "", "Use a stored key by name (from 'ordkit key init')")
	fs.StringVar(&signerRole, "signer-role", "", "When using --signer, optionally use a derived role key")
	fs.StringVar(&keyFile, "key-file", "", "Path to a seed file (hex) created by 'ordkit key init/derive'")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: ordkit record render [flags] <pairs-file>")
		return 2
	}
	if seedHex != "" && (signerName != "" || keyFile != "") {
		fmt.Fprintln(errOut, "conflicting signer flags: --seed-hex cannot be combined with --signer or --key-file")
		return 2
	}
	if signerName != "" && keyFile != "" {
		fmt.Fprintln(errOut, "conflicting signer flags: --signer cannot be combined with --key-file")
		return 2
	}
	if recordID == "" {
		recordID = record.NewRecordID()
	} else if !record.ValidRecordID(recordID) {
		fmt.Fprintln(errOut, "invalid --record-id (expected ord-<32 hex chars>)")
		return 2
	}
	if created == "" {
		created = time.Now().UTC().Format(time.RFC3339)
	} else if _, perr := time.Parse(time.RFC3339, created); perr != nil {
		fmt.Fprintf(errOut, "invalid --created (expected RFC3339): %v\n", perr)
		return 2
	}

	pairs, err := readPairsFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read pairs: %v\n", err)
		return 1
	}
	rxn, err := record.Unflatten(pairs)
	if err != nil {
		fmt.Fprintf(errOut, "invalid reaction fields: %v\n", err)
		return 1
	}
	res, _ := validation.ValidateReaction(rxn, nil)
	if !res.OK() {
		for _, f := range res.Errors() {
			fmt.Fprintf(errOut, "%s %s: %s\n", f.RuleID, f.Path, f.Message)
		}
		return 1
	}
	flat, err := record.Flatten(rxn)
	if err != nil {
		fmt.Fprintf(errOut, "flatten: %v\n", err)
		return 1
	}

	doc := record.Document{
		Meta: map[string]string{
			"Created":        created,
			"Format":         record.FormatName,
			"Format-Version": record.FormatVersion,
			"Record-Id":      recordID,
		},
		Reaction: flat,
		Provenance: map[string]string{
			"Record-Created": created,
		},
	}
	if username != "" {
		doc.Provenance["Username"] = username
	}

	var finalBytes []byte
	if seedHex != "" || signerName != "" || keyFile != "" {
		ks, kerr := keys.CreateKeyStore("")
		if kerr != nil {
			fmt.Fprintf(errOut, "keys: %v\n", kerr)
			return 1
		}
		seed, serr := ks.LoadSeed(seedHex, signerName, signerRole, keyFile)
		if serr != nil {
			fmt.Fprintf(errOut, "invalid signer: %v\n", serr)
			return 2
		}
		priv := ed25519.NewKeyFromSeed(seed)
		pub := priv.Public().(ed25519.PublicKey)
		finalBytes, err = record.SignEd25519(doc, pub, priv)
	} else {
		finalBytes, err = record.Render(doc)
	}
	if err != nil {
		fmt.Fprintf(errOut, "render: %v\n", err)
		return 1
	}

	rec, err := record.Parse(finalBytes)
	if err != nil {
		fmt.Fprintf(errOut, "parse final: %v\n", err)
		return 1
	}
	fmt.Fprintf(errOut, "Record-CID: %s\n", rec.CID())
	_, _ = out.Write(finalBytes)
	return 0
}

func cmdValidate(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var policyPath string
	var validatorID string
	var validatedAt string
	var seedHex string

	fs.StringVar(&policyPath, "policy", "", "Validation policy file")
	fs.StringVar(&validatorID, "validator-id", "", "Validator-ID recorded in the report")
	fs.StringVar(&validatedAt, "validated-at", "", "Optional RFC3339 timestamp for report META Validated-At (omit for deterministic output)")
	fs.StringVar(&seedHex, "seed-hex", "", "Optional ed25519 seed as 64 hex chars (signs the report)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: ordkit validate [flags] <record-file>")
		return 2
	}

	var opts *validation.Options
	if policyPath != "" {
		pb, rerr := os.ReadFile(policyPath)
		if rerr != nil {
			fmt.Fprintf(errOut, "read policy: %v\n", rerr)
			return 1
		}
		p, perr := policy.Parse(pb)
		if perr != nil {
			fmt.Fprintf(errOut, "invalid policy: %v\n", perr)
			return 1
		}
		opts = p.Options()
	}

	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read record: %v\n", err)
		return 1
	}
	rec, err := record.Parse(b)
	if err != nil {
		fmt.Fprintf(errOut, "invalid record: %v\n", err)
		return 1
	}
	rxn, err := rec.Reaction()
	if err != nil {
		fmt.Fprintf(errOut, "invalid reaction section: %v\n", err)
		return 1
	}
	res, verr := validation.ValidateReaction(rxn, opts)
	if verr != nil && res == nil {
		fmt.Fprintf(errOut, "validate: %v\n", verr)
		return 1
	}

	ropts := report.RenderOptions{ValidatorID: validatorID}
	if validatedAt != "" {
		t, perr := time.Parse(time.RFC3339, validatedAt)
		if perr != nil {
			fmt.Fprintf(errOut, "invalid --validated-at (expected RFC3339): %v\n", perr)
			return 2
		}
		ropts.ValidatedAt = t
	}
	if seedHex != "" {
		seed, serr := keys.ParseSeedHex(seedHex)
		if serr != nil {
			fmt.Fprintf(errOut, "invalid --seed-hex: %v\n", serr)
			return 2
		}
		ropts.PrivateKey = ed25519.NewKeyFromSeed(seed)
		ropts.ValidatorKey = keys.GenerateIssuerKeyFromSeed(seed)
	}

	doc, err := report.RenderDocument(res, report.Subject{
		RecordCID: rec.CID(),
		RecordID:  rec.RecordID(),
	}, ropts)
	if err != nil {
		fmt.Fprintf(errOut, "report: %v\n", err)
		return 1
	}
	fmt.Fprintf(errOut, "Report-CID: %s\n", doc.CID)
	_, _ = out.Write(doc.Bytes)

	if !res.OK() || (opts != nil && opts.DenyWarnings && len(res.Warnings()) > 0) {
		return 1
	}
	return 0
}

func cmdPut(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("put", flag.ContinueOnError)
	fs.SetOutput(errOut)

	backend, casConfig := registerCASFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: ordkit put [flags] <record-file>")
		return 2
	}
	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read %s: %v\n", filepath.Base(fs.Arg(0)), err)
		return 1
	}

	cas, closeFn, err := openCAS(*backend, *casConfig)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if closeFn != nil {
		defer func() { _ = closeFn() }()
	}

	id, err := dataset.New(cas).PutRecord(b)
	if err != nil {
		var ierr *dataset.InvalidError
		if errors.As(err, &ierr) {
			for _, f := range ierr.Result.Errors() {
				fmt.Fprintf(errOut, "%s %s: %s\n", f.RuleID, f.Path, f.Message)
			}
			return 1
		}
		fmt.Fprintf(errOut, "put: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, id.String())
	return 0
}

func cmdGet(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(errOut)

	backend, casConfig := registerCASFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: ordkit get [flags] <cid>")
		return 2
	}
	id, err := cid.Decode(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid CID: %v\n", err)
		return 2
	}

	cas, closeFn, err := openCAS(*backend, *casConfig)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if closeFn != nil {
		defer func() { _ = closeFn() }()
	}

	b, err := cas.Get(id)
	if err != nil {
		if storage.IsNotFound(err) {
			fmt.Fprintln(errOut, "not found")
			return 1
		}
		fmt.Fprintf(errOut, "get: %v\n", err)
		return 1
	}
	_, _ = out.Write(b)
	return 0
}

func registerCASFlags(fs *flag.FlagSet) (backend, casConfig *string) {
	backend = fs.String("backend", "", "CAS backend name")
	casConfig = fs.String("cas-config", "", "JSON CAS config file (alternative to --backend)")
	casregistry.RegisterFlags(fs, casregistry.UsageCLI)
	return backend, casConfig
}

func openCAS(backend, casConfig string) (storage.CAS, func() error, error) {
	switch {
	case backend != "" && casConfig != "":
		return nil, nil, fmt.Errorf("conflicting flags: --backend and --cas-config")
	case casConfig != "":
		cfg, err := casconfig.LoadFile(casConfig)
		if err != nil {
			return nil, nil, err
		}
		return cfg.Open(casregistry.UsageCLI, "")
	case backend != "":
		return casregistry.Open(backend, casregistry.UsageCLI)
	default:
		return nil, nil, fmt.Errorf("missing --backend or --cas-config (backends: %s)",
			strings.Join(casregistry.Names(casregistry.UsageCLI), ", "))
	}
}

// readPairsFile reads flattened reaction fields from a "Key: Value" lines
// file. Blank lines and lines starting with '#' are skipped.
func readPairsFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pairs := make(map[string]string)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, ": ")
		if !ok || key == "" {
			return nil, fmt.Errorf("line %d: expected 'Key: Value'", lineNo)
		}
		if _, exists := pairs[key]; exists {
			return nil, fmt.Errorf("line %d: duplicate key %q", lineNo, key)
		}
		pairs[key] = val
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

func cmdKey(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printKeyUsage(errOut)
		return 2
	}
	switch args[0] {
	case "init":
		return cmdKeyInit(args[1:], out, errOut)
	case "derive":
		return cmdKeyDerive(args[1:], out, errOut)
	case "list":
		return cmdKeyList(args[1:], out, errOut)
	case "export":
		return cmdKeyExport(args[1:], out, errOut)
	case "help", "-h", "--help":
		printKeyUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown key subcommand: %s\n\n", args[0])
		printKeyUsage(errOut)
		return 2
	}
}

func printKeyUsage(w io.Writer) {
	fmt.Fprintln(w, "ordkit key: minimal local key management")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  ordkit key init --name <name> [--seed-hex <64hex>] [--force]")
	fmt.Fprintln(w, "  ordkit key derive --from <name> --role <role> [--force]")
	fmt.Fprintln(w, "  ordkit key list")
	fmt.Fprintln(w, "  ordkit key export --name <name> [--role <role>]")
}

func cmdKeyInit(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key init", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var seedHex string
	var force bool

	fs.StringVar(&name, "name", "", "Key name (directory under ~/.ordkit/keys)")
	fs.StringVar(&seedHex, "seed-hex", "", "Optional ed25519 seed as 64 hex chars (for reproducible demos)")
	fs.BoolVar(&force, "force", false, "Overwrite existing key files")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "missing --name")
		return 2
	}
	if err := keys.CheckKeyName(name); err != nil {
		fmt.Fprintf(errOut, "invalid --name: %v\n", err)
		return 2
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}

	var seed []byte
	if seedHex != "" {
		var derr error
		seed, derr = keys.ParseSeedHex(seedHex)
		if derr != nil {
			fmt.Fprintf(errOut, "invalid --seed-hex: %v\n", derr)
			return 2
		}
	} else {
		seed = make([]byte, ed25519.SeedSize)
		if _, err := rand.Read(seed); err != nil {
			fmt.Fprintf(errOut, "rand: %v\n", err)
			return 1
		}
	}

	issuerKey, rootPath, err := ks.InitializeRootKey(name, seed, force)
	if err != nil {
		fmt.Fprintf(errOut, "write key: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Created root key: %s\n", issuerKey)
	fmt.Fprintf(out, "Stored at: %s\n", rootPath)
	return 0
}

func cmdKeyDerive(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key derive", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var from string
	var role string
	var force bool

	fs.StringVar(&from, "from", "", "Root key name")
	fs.StringVar(&role, "role", "", "Role identifier (e.g. submitter, curator)")
	fs.BoolVar(&force, "force", false, "Overwrite existing key files")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if from == "" {
		fmt.Fprintln(errOut, "missing --from")
		return 2
	}
	if role == "" {
		fmt.Fprintln(errOut, "missing --role")
		return 2
	}
	if err := keys.CheckKeyName(from); err != nil {
		fmt.Fprintf(errOut, "invalid --from: %v\n", err)
		return 2
	}
	if err := keys.CheckRole(role); err != nil {
		fmt.Fprintf(errOut, "invalid --role: %v\n", err)
		return 2
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	issuerKey, rolePath, err := ks.DeriveKeyFromRole(from, role, force)
	if err != nil {
		fmt.Fprintf(errOut, "derive role key: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Created role key: %s\n", issuerKey)
	fmt.Fprintf(out, "Stored at: %s\n", rolePath)
	return 0
}

func cmdKeyExport(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key export", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var role string

	fs.StringVar(&name, "name", "", "Key name")
	fs.StringVar(&role, "role", "", "Optional role (if set, exports derived role key)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "missing --name")
		return 2
	}
	if err := keys.CheckKeyName(name); err != nil {
		fmt.Fprintf(errOut, "invalid --name: %v\n", err)
		return 2
	}
	if role != "" {
		if err := keys.CheckRole(role); err != nil {
			fmt.Fprintf(errOut, "invalid --role: %v\n", err)
			return 2
		}
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	issuerKey, err := ks.ExportKey(name, role)
	if err != nil {
		fmt.Fprintf(errOut, "export key: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, issuerKey)
	return 0
}

func cmdKeyList(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key list", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	entries, err := ks.ListKeys()
	if err != nil {
		fmt.Fprintf(errOut, "list keys: %v\n", err)
		return 1
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s\n", e.Identifier)
		for _, r := range e.Permissions {
			fmt.Fprintf(out, "  - %s\n", r)
		}
	}
	return 0
}
