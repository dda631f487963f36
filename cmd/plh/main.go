package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"xdao.co/plh/config"
	"xdao.co/plh/contentaddr"
	"xdao.co/plh/entropy"
	"xdao.co/plh/fingerprint"
	"xdao.co/plh/internal/logging"
	"xdao.co/plh/internal/tui"
	"xdao.co/plh/model"
	"xdao.co/plh/payload"
	"xdao.co/plh/stamp"
	"xdao.co/plh/verify"
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
	case "hash":
		return cmdHash(args[1:], out, errOut)
	case "hash-file":
		return cmdHashFile(args[1:], out, errOut)
	case "addr":
		return cmdAddr(args[1:], out, errOut)
	case "issue":
		return cmdIssue(args[1:], out, errOut)
	case "verify":
		return cmdVerify(args[1:], out, errOut)
	case "demo":
		return cmdDemo(args[1:], out, errOut)
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
	fmt.Fprintln(w, "plh: provenance layer for humans")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  plh hash <text>")
	fmt.Fprintln(w, "  plh hash-file --name <name> --size <bytes> --mime <type>")
	fmt.Fprintln(w, "  plh addr <file>")
	fmt.Fprintln(w, "  plh issue (--text <text> | --file <path> [--mime <type>])")
	fmt.Fprintln(w, "  plh verify --cert <file> (--text <text> | --file <path> [--mime <type>]) [--tampered]")
	fmt.Fprintln(w, "  plh demo [--config <file>] [--invisible] [--log-level <level>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - hash prints the 16-hex-char content fingerprint")
	fmt.Fprintln(w, "  - hash-file fingerprints the file's metadata string (name-size-mime)")
	fmt.Fprintln(w, "  - addr prints the CIDv1 (raw, sha2-256) content address of the file bytes")
	fmt.Fprintln(w, "  - issue prints the certificate as JSON; entropy is synthesized locally")
	fmt.Fprintln(w, "  - verify prints VERIFIED or TAMPERED and exits 0 or 1")
	fmt.Fprintln(w, "  - demo starts the interactive terminal shell")
}

func cmdHash(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("hash", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: plh hash <text>")
		return 2
	}
	_, _ = fmt.Fprintln(out, fingerprint.Hash(fs.Arg(0)))
	return 0
}

func cmdHashFile(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("hash-file", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var size int64
	var mime string
	fs.StringVar(&name, "name", "", "File name as uploaded")
	fs.Int64Var(&size, "size", 0, "File size in bytes")
	fs.StringVar(&mime, "mime", "", "MIME type (e.g. image/png)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "missing --name")
		return 2
	}
	if mime == "" {
		fmt.Fprintln(errOut, "missing --mime")
		return 2
	}
	p := payload.NewFile(name, size, mime, nil)
	_, _ = fmt.Fprintln(out, fingerprint.Of(p))
	return 0
}

func cmdAddr(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("addr", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: plh addr <file>")
		return 2
	}
	path := fs.Arg(0)
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(errOut, "read %s: %v\n", filepath.Base(path), err)
		return 1
	}
	c, err := contentaddr.AddressCID(b)
	if err != nil {
		fmt.Fprintf(errOut, "address: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, c.String())
	return 0
}

// loadPayload builds the payload shared by issue and verify from the
// --text/--file/--mime flags.
func loadPayload(text, file, mime string, errOut io.Writer) (payload.Payload, bool) {
	if text != "" && file != "" {
		fmt.Fprintln(errOut, "conflicting flags: --text cannot be combined with --file")
		return payload.Payload{}, false
	}
	if text != "" {
		return payload.Text(text), true
	}
	if file == "" {
		fmt.Fprintln(errOut, "missing content: use --text or --file")
		return payload.Payload{}, false
	}
	b, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(errOut, "read %s: %v\n", filepath.Base(file), err)
		return payload.Payload{}, false
	}
	if mime == "" {
		mime = sniffMIME(file)
	}
	return payload.NewFile(filepath.Base(file), int64(len(b)), mime, b), true
}

func sniffMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}

func cmdIssue(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("issue", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var text string
	var file string
	var mime string
	fs.StringVar(&text, "text", "", "Text content to certify")
	fs.StringVar(&file, "file", "", "File to certify (metadata fingerprint)")
	fs.StringVar(&mime, "mime", "", "MIME type override for --file")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	p, ok := loadPayload(text, file, mime, errOut)
	if !ok {
		return 2
	}
	if file != "" {
		rules := payload.DefaultIntakeRules()
		if err := rules.Accept(p.Type, p.File.Name, p.File.Size, p.File.MIME); err != nil {
			fmt.Fprintf(errOut, "rejected: %v\n", err)
			return 2
		}
	}

	// The CLI has no pointer to sample, so sweep the whole surface.
	collector := entropy.NewCollector(entropy.Config{})
	sweepSurface(collector)

	session := stamp.NewSession(collector)
	cert, err := session.Issue(p, collector.Coverage())
	if err != nil {
		fmt.Fprintf(errOut, "issue: %v\n", err)
		return 1
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cert.Record()); err != nil {
		fmt.Fprintf(errOut, "encode: %v\n", err)
		return 1
	}
	return 0
}

func sweepSurface(c *entropy.Collector) {
	step := float64(entropy.DefaultCellSize)
	limit := step * 10
	for y := 0.0; y < limit; y += step {
		for x := 0.0; x < limit; x += step {
			c.Report(x, y)
		}
	}
}

func cmdVerify(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var certPath string
	var text string
	var file string
	var mime string
	var tampered bool
	fs.StringVar(&certPath, "cert", "", "Certificate JSON file (as printed by 'plh issue')")
	fs.StringVar(&text, "text", "", "Current text content")
	fs.StringVar(&file, "file", "", "Current file content")
	fs.StringVar(&mime, "mime", "", "MIME type override for --file")
	fs.BoolVar(&tampered, "tampered", false, "Treat the content as explicitly marked tampered")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if certPath == "" {
		fmt.Fprintln(errOut, "missing --cert")
		return 2
	}
	p, ok := loadPayload(text, file, mime, errOut)
	if !ok {
		return 2
	}

	b, err := os.ReadFile(certPath)
	if err != nil {
		fmt.Fprintf(errOut, "read cert: %v\n", err)
		return 1
	}
	var rec model.CertificateRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		fmt.Fprintf(errOut, "invalid cert: %v\n", err)
		return 1
	}

	switch verify.Verdict(stamp.Restore(rec), p, tampered) {
	case model.VerdictVerified:
		_, _ = fmt.Fprintln(out, "VERIFIED")
		return 0
	default:
		_, _ = fmt.Fprintln(out, "TAMPERED")
		return 1
	}
}

func cmdDemo(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var configPath string
	var invisible bool
	var logLevel string
	fs.StringVar(&configPath, "config", "", "Explicit config file (default: plh.yaml in cwd or user config dir)")
	fs.BoolVar(&invisible, "invisible", false, "Sign automatically once entropy coverage reaches 100%")
	fs.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "config: %v\n", err)
		return 2
	}
	if invisible {
		cfg.InvisibleMode = true
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logging.SetLevel(cfg.LogLevel)

	if err := tui.Run(cfg); err != nil {
		fmt.Fprintf(errOut, "demo: %v\n", err)
		return 1
	}
	return 0
}
