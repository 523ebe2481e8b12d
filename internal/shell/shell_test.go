package shell_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/doky-sim/doky-cli/internal/cli"
	"github.com/doky-sim/doky-cli/internal/errors"
	"github.com/doky-sim/doky-cli/internal/memoryfs"
	"github.com/doky-sim/doky-cli/internal/mocks"
	"github.com/doky-sim/doky-cli/internal/navigator"
	"github.com/doky-sim/doky-cli/internal/shell"
)

var _ = Describe("Shell", func() {
	var (
		config cli.Config
		reader *mocks.LineReader
		stdout *bytes.Buffer
		stderr *bytes.Buffer
		cfg    shell.Config
	)

	BeforeEach(func() {
		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)
		reader = new(mocks.LineReader)

		config = cli.Config{
			Navigator: navigator.New(memoryfs.NewTree("C:")),
			Stdout:    stdout,
		}

		service, err := cli.NewService(config)
		Expect(err).NotTo(HaveOccurred())

		cfg = shell.Config{
			Service: service,
			Reader:  reader,
			Stdout:  stdout,
			Stderr:  stderr,
		}
	})

	run := func() error {
		sh, err := shell.New(cfg)
		Expect(err).NotTo(HaveOccurred())
		return sh.Run()
	}

	It("requires a reader and writers", func() {
		_, err := shell.New(shell.Config{Stdout: stdout, Stderr: stderr})
		Expect(err).To(MatchError("validation failed: missing line reader"))

		_, err = shell.New(shell.Config{Reader: reader})
		Expect(err).To(MatchError("validation failed: missing output writers"))
	})

	It("prints the banner and stops on exit", func() {
		cfg.Banner = "Welcome to Doky file simulator"
		reader.Lines = []string{"exit", "mk never"}

		Expect(run()).To(Succeed())
		Expect(stdout.String()).To(Equal("Welcome to Doky file simulator\nClosing the application...\n"))
		Expect(reader.Lines).To(Equal([]string{"mk never"}))
	})

	It("stops at the end of the input", func() {
		Expect(run()).To(Succeed())
		Expect(stdout.String()).To(Equal("Closing the application...\n"))
	})

	It("prompts with the current path", func() {
		reader.Lines = []string{"mk first", "mk sub_first", "cd ../..", "cd first"}

		Expect(run()).To(Succeed())
		Expect(reader.Prompts).To(Equal([]string{
			"C:",
			"C:\\first",
			"C:\\first\\sub_first",
			"C:",
			"C:\\first",
		}))
		Expect(stderr.String()).To(BeEmpty())
	})

	It("lists folders with ls", func() {
		reader.Lines = []string{"mk first", "cd ..", "mk second", "cd ..", "ls"}

		Expect(run()).To(Succeed())
		Expect(stdout.String()).To(Equal("C:\n  first\n  second\nClosing the application...\n"))
	})

	It("removes folders and protects non-empty ones", func() {
		reader.Lines = []string{
			"mk first", "mk sub_first", "cd ../..", "mk second", "cd ..",
			"rm second -f",
			"rm first -r",
			"ls",
		}

		Expect(run()).To(Succeed())
		Expect(stdout.String()).To(ContainSubstring("C:\n  first\n"))
		Expect(stdout.String()).NotTo(ContainSubstring("second"))
		Expect(stderr.String()).To(Equal(
			"unable to remove \"first\": folder is not empty\n" +
				"  > rm first -r\n" +
				"Remove its subfolders first.\n",
		))
	})

	It("reports errors and keeps going", func() {
		reader.Lines = []string{"frobnicate", "cd ..", "mk a/b", "rm x", "mv", "mk ok"}

		Expect(run()).To(Succeed())
		Expect(reader.Prompts[len(reader.Prompts)-1]).To(Equal("C:\\ok"))

		output := stderr.String()
		Expect(output).To(ContainSubstring("command not recognized\n  > frobnicate"))
		Expect(output).To(ContainSubstring("invalid parent folder\n  > cd .."))
		Expect(output).To(ContainSubstring("invalid folder name\n  > mk a/b"))
		Expect(output).To(ContainSubstring("command not recognized\n  > rm x"))
		Expect(output).To(ContainSubstring("mv: not implemented\n  > mv"))
	})

	It("skips blank lines", func() {
		reader.Lines = []string{"", "   ", "help"}

		Expect(run()).To(Succeed())
		Expect(stderr.String()).To(BeEmpty())
		Expect(stdout.String()).To(ContainSubstring("Available commands:"))
	})

	It("colors errors in interactive sessions", func() {
		cfg.Interactive = true
		reader.Lines = []string{"cd nowhere"}

		Expect(run()).To(Succeed())
		Expect(stderr.String()).To(ContainSubstring("\x1b["))
		Expect(stderr.String()).NotTo(ContainSubstring("  > cd nowhere"))
		Expect(stderr.String()).To(ContainSubstring("no folder named \"nowhere\""))
	})

	Context("when stopping on errors", func() {
		BeforeEach(func() {
			cfg.StopOnError = true
		})

		It("returns the first failure", func() {
			reader.Lines = []string{"mk first", "cd missing", "mk never"}

			err := run()
			Expect(err).To(MatchError(errors.ErrInvalidPath))
			Expect(err.Error()).To(HavePrefix("\"cd missing\" failed"))
			Expect(reader.Lines).To(Equal([]string{"mk never"}))
			Expect(stderr.String()).To(BeEmpty())
		})
	})

	It("returns read failures", func() {
		reader.Err = errors.New("terminal went away")

		err := run()
		Expect(err).To(MatchError(ContainSubstring("unable to read command: terminal went away")))
	})
})

var _ = Describe("ScanReader", func() {
	It("prints prompts and returns lines", func() {
		out := new(bytes.Buffer)
		reader := shell.NewScanReader(strings.NewReader("mk first\nls\n"), out, false)

		line, err := reader.ReadLine("C:")
		Expect(err).NotTo(HaveOccurred())
		Expect(line).To(Equal("mk first"))

		line, err = reader.ReadLine("C:\\first")
		Expect(err).NotTo(HaveOccurred())
		Expect(line).To(Equal("ls"))

		_, err = reader.ReadLine("C:\\first")
		Expect(err).To(MatchError(ContainSubstring("EOF")))

		Expect(out.String()).To(Equal("C:> C:\\first> C:\\first> \n"))
	})

	It("echoes lines when asked to", func() {
		out := new(bytes.Buffer)
		reader := shell.NewScanReader(strings.NewReader("mk first"), out, true)

		line, err := reader.ReadLine("C:")
		Expect(err).NotTo(HaveOccurred())
		Expect(line).To(Equal("mk first"))
		Expect(out.String()).To(Equal("C:> mk first\n"))
	})
})
