package cli_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"strings"

	"github.com/rs/zerolog"

	"github.com/rwx-research/fm-cli/internal/cli"
	"github.com/rwx-research/fm-cli/internal/codec"
	"github.com/rwx-research/fm-cli/internal/digest"
	"github.com/rwx-research/fm-cli/internal/errors"
	"github.com/rwx-research/fm-cli/internal/fs"
	"github.com/rwx-research/fm-cli/internal/memoryfs"
	"github.com/rwx-research/fm-cli/internal/messages"
	"github.com/rwx-research/fm-cli/internal/mocks"
	"github.com/rwx-research/fm-cli/internal/pathctx"
	"github.com/rwx-research/fm-cli/internal/sysinfo"
)

var _ = Describe("Engine", func() {
	var (
		config  cli.Config
		engine  *cli.Engine
		memFS   *memoryfs.MemoryFS
		mockFS  *mocks.FileSystem
		paths   *pathctx.Context
		sysInfo *mocks.SystemInfo
		stdout  *strings.Builder
		stderr  *strings.Builder
		logs    *strings.Builder
	)

	BeforeEach(func() {
		memFS = memoryfs.NewFS()
		Expect(memFS.MkdirAll("/home/user")).To(Succeed())
		mockFS = mocks.Delegate(memFS)
		sysInfo = new(mocks.SystemInfo)
		stdout = new(strings.Builder)
		stderr = new(strings.Builder)
		logs = new(strings.Builder)

		var err error
		paths, err = pathctx.New(pathctx.Config{FileSystem: mockFS, Home: "/home/user"})
		Expect(err).NotTo(HaveOccurred())

		brotli, err := codec.Lookup(codec.Brotli)
		Expect(err).NotTo(HaveOccurred())

		logger := zerolog.New(logs).Level(zerolog.DebugLevel)

		config = cli.Config{
			FileSystem: mockFS,
			Paths:      paths,
			SystemInfo: sysInfo,
			Codec:      brotli,
			Digest:     digest.SHA256,
			Stdout:     stdout,
			Stderr:     stderr,
			Logger:     &logger,
		}
	})

	JustBeforeEach(func() {
		var err error
		engine, err = cli.NewEngine(config)
		Expect(err).NotTo(HaveOccurred())
	})

	writeFiles := func(files map[string]string) {
		contents := make(map[string][]byte, len(files))
		for name, content := range files {
			contents[name] = []byte(content)
		}
		Expect(memFS.WriteFiles(contents)).To(Succeed())
	}

	readFile := func(name string) string {
		contents, err := memFS.ReadFile(name)
		Expect(err).NotTo(HaveOccurred())
		return string(contents)
	}

	exists := func(name string) bool {
		ok, err := memFS.Exists(name)
		Expect(err).NotTo(HaveOccurred())
		return ok
	}

	Describe("NewEngine", func() {
		It("rejects an incomplete configuration", func() {
			_, err := cli.NewEngine(cli.Config{})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("validation failed"))
		})

		It("rejects an unknown digest", func() {
			config.Digest = "md4"
			_, err := cli.NewEngine(config)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown hash algorithm"))
		})
	})

	Describe("Split", func() {
		It("splits on any whitespace", func() {
			Expect(cli.Split("  cp\tsrc.txt   dir  ")).To(Equal(cli.Command{Name: "cp", Args: []string{"src.txt", "dir"}}))
		})

		It("returns an empty command for a blank line", func() {
			Expect(cli.Split("   ")).To(Equal(cli.Command{}))
		})
	})

	Describe("invalid input", func() {
		JustBeforeEach(func() {
			forbidden := func() { Fail("the file system must not be touched for invalid input") }
			mockFS.MockCreate = func(string, fs.CreateMode) (fs.File, error) { forbidden(); return nil, nil }
			mockFS.MockOpen = func(string) (fs.File, error) { forbidden(); return nil, nil }
			mockFS.MockReadDir = func(string) ([]fs.DirEntry, error) { forbidden(); return nil, nil }
			mockFS.MockStat = func(string) (fs.FileInfo, error) { forbidden(); return nil, nil }
			mockFS.MockExists = func(string) (bool, error) { forbidden(); return false, nil }
			mockFS.MockRename = func(string, string) error { forbidden(); return nil }
			mockFS.MockRemove = func(string) error { forbidden(); return nil }
			mockFS.MockChdir = func(string) error { forbidden(); return nil }
		})

		DescribeTable("is rejected before any file-system access",
			func(line string) {
				err := engine.Execute(line)
				Expect(errors.Is(err, errors.ErrInvalidInput)).To(BeTrue())
				Expect(stdout.String()).To(BeEmpty())
				Expect(paths.Current()).To(Equal("/home/user"))
			},
			Entry("an empty line", ""),
			Entry("a blank line", " \t "),
			Entry("an unknown command", "touch a.txt"),
			Entry("a command in the wrong case", "LS"),
			Entry("missing arguments", "cd"),
			Entry("too many arguments", "cd a b"),
			Entry("an argument to a command without any", "ls -la"),
			Entry("a single argument to a two argument command", "cp a.txt"),
			Entry("three arguments to a two argument command", "mv a b c"),
			Entry("an argument to .exit", ".exit now"),
		)

		It("is reported by Parse as well", func() {
			_, err := engine.Parse("rm")
			Expect(err).To(MatchError(errors.ErrInvalidInput))
		})

		It("runs commands built by hand through Dispatch", func() {
			mockFS.MockExists = func(string) (bool, error) { return false, nil }
			mockFS.MockStat = func(string) (fs.FileInfo, error) { return nil, errors.New("missing") }

			Expect(engine.Dispatch(cli.Command{Name: "cd", Args: []string{"docs"}})).To(MatchError(errors.ErrOperationFailed))
			Expect(engine.Dispatch(cli.Command{Name: ".exit"})).To(MatchError(errors.ErrExit))
		})

		It("is reported by Dispatch for commands built by hand", func() {
			err := engine.Dispatch(cli.Command{Name: "add", Args: []string{"a", "b"}})
			Expect(err).To(MatchError(errors.ErrInvalidInput))
		})
	})

	Describe(".exit", func() {
		It("asks the session to end", func() {
			Expect(engine.Execute(".exit")).To(MatchError(errors.ErrExit))
		})
	})

	Describe("help", func() {
		It("lists every command with its arguments", func() {
			Expect(engine.Execute("help")).To(Succeed())
			Expect(stdout.String()).To(ContainSubstring("rn <path> <new_name>"))
			Expect(stdout.String()).To(ContainSubstring("cd <path>"))
			Expect(stdout.String()).To(ContainSubstring("decompress <path> <destination>"))
			Expect(stdout.String()).To(ContainSubstring(".exit"))
		})
	})

	Describe("up", func() {
		BeforeEach(func() {
			Expect(memFS.MkdirAll("/a/b/c")).To(Succeed())
		})

		It("moves to the parent directory", func() {
			Expect(paths.SetCurrent("/a/b/c")).To(BeTrue())
			Expect(engine.Execute("up")).To(Succeed())
			Expect(paths.Current()).To(Equal("/a/b"))
			Expect(stdout.String()).To(BeEmpty())
		})

		It("stays at the root and prints a notice", func() {
			Expect(paths.SetCurrent("/")).To(BeTrue())
			Expect(engine.Execute("up")).To(Succeed())
			Expect(paths.Current()).To(Equal("/"))
			Expect(stdout.String()).To(ContainSubstring(messages.RootNotice))
		})

		It("silently keeps the directory when the parent cannot be entered", func() {
			Expect(paths.SetCurrent("/a/b/c")).To(BeTrue())
			mockFS.MockChdir = func(string) error { return errors.New("permission denied") }

			Expect(engine.Execute("up")).To(Succeed())
			Expect(paths.Current()).To(Equal("/a/b/c"))
			Expect(stdout.String()).To(BeEmpty())
		})
	})

	Describe("cd", func() {
		BeforeEach(func() {
			writeFiles(map[string]string{
				"/home/user/docs/readme.txt": "hi",
				"/srv/data/.keep":            "",
			})
		})

		It("enters a relative directory", func() {
			Expect(engine.Execute("cd docs")).To(Succeed())
			Expect(paths.Current()).To(Equal("/home/user/docs"))
		})

		It("enters an absolute directory", func() {
			Expect(engine.Execute("cd /srv/data")).To(Succeed())
			Expect(paths.Current()).To(Equal("/srv/data"))
		})

		It("normalizes dot segments", func() {
			Expect(engine.Execute("cd docs/../docs/.")).To(Succeed())
			Expect(paths.Current()).To(Equal("/home/user/docs"))
		})

		It("fails on a file and keeps the current directory", func() {
			err := engine.Execute("cd docs/readme.txt")
			Expect(err).To(MatchError(errors.ErrOperationFailed))
			Expect(paths.Current()).To(Equal("/home/user"))
		})

		It("fails on a missing path and logs the cause", func() {
			err := engine.Execute("cd nowhere")
			Expect(err).To(MatchError(errors.ErrOperationFailed))
			Expect(paths.Current()).To(Equal("/home/user"))
			Expect(logs.String()).To(ContainSubstring("operation failed"))
			Expect(logs.String()).To(ContainSubstring("/home/user/nowhere"))
		})

		It("fails when the directory change is refused", func() {
			mockFS.MockChdir = func(string) error { return errors.New("permission denied") }

			Expect(engine.Execute("cd docs")).To(MatchError(errors.ErrOperationFailed))
			Expect(paths.Current()).To(Equal("/home/user"))
		})
	})

	Describe("ls", func() {
		It("lists directories first, then files, each sorted by name", func() {
			writeFiles(map[string]string{
				"/home/user/b.txt":       "b",
				"/home/user/a.txt":       "a",
				"/home/user/a_dir/.keep": "",
			})

			Expect(engine.Execute("ls")).To(Succeed())

			output := stdout.String()
			Expect(output).To(ContainSubstring("directory"))
			Expect(output).To(ContainSubstring("file"))
			Expect(strings.Index(output, "a_dir")).To(BeNumerically("<", strings.Index(output, "a.txt")))
			Expect(strings.Index(output, "a.txt")).To(BeNumerically("<", strings.Index(output, "b.txt")))
		})

		It("does not descend into subdirectories", func() {
			writeFiles(map[string]string{"/home/user/a_dir/nested.txt": ""})

			Expect(engine.Execute("ls")).To(Succeed())
			Expect(stdout.String()).To(ContainSubstring("a_dir"))
			Expect(stdout.String()).NotTo(ContainSubstring("nested.txt"))
		})

		It("sorts whatever the file system reports", func() {
			mockFS.MockReadDir = func(string) ([]fs.DirEntry, error) {
				return []fs.DirEntry{
					mocks.DirEntry{FileName: "zeta.txt"},
					mocks.DirEntry{FileName: "photos", IsDirectory: true},
					mocks.DirEntry{FileName: "alpha.txt"},
				}, nil
			}

			Expect(engine.Execute("ls")).To(Succeed())

			output := stdout.String()
			Expect(strings.Index(output, "photos")).To(BeNumerically("<", strings.Index(output, "alpha.txt")))
			Expect(strings.Index(output, "alpha.txt")).To(BeNumerically("<", strings.Index(output, "zeta.txt")))
		})

		It("fails when the directory cannot be read", func() {
			mockFS.MockReadDir = func(string) ([]fs.DirEntry, error) { return nil, errors.New("permission denied") }

			Expect(engine.Execute("ls")).To(MatchError(errors.ErrOperationFailed))
		})
	})

	Describe("cat", func() {
		It("prints the file", func() {
			writeFiles(map[string]string{"/home/user/notes.txt": "first\nsecond\n"})

			Expect(engine.Execute("cat notes.txt")).To(Succeed())
			Expect(stdout.String()).To(Equal("first\nsecond\n"))
		})

		It("terminates output that lacks a final newline", func() {
			writeFiles(map[string]string{"/home/user/notes.txt": "no newline"})

			Expect(engine.Execute("cat notes.txt")).To(Succeed())
			Expect(stdout.String()).To(Equal("no newline\n"))
		})

		It("streams whatever the file system hands out", func() {
			writeFiles(map[string]string{"/home/user/notes.txt": ""})
			mockFS.MockOpen = func(string) (fs.File, error) { return mocks.NewFile("from the mock\n"), nil }

			Expect(engine.Execute("cat notes.txt")).To(Succeed())
			Expect(stdout.String()).To(Equal("from the mock\n"))
		})

		It("fails when the file cannot be opened", func() {
			writeFiles(map[string]string{"/home/user/notes.txt": "secret"})
			mockFS.MockOpen = func(string) (fs.File, error) { return nil, errors.New("permission denied") }

			Expect(engine.Execute("cat notes.txt")).To(MatchError(errors.ErrOperationFailed))
			Expect(stdout.String()).To(BeEmpty())
		})

		It("prints nothing for an empty file", func() {
			writeFiles(map[string]string{"/home/user/empty.txt": ""})

			Expect(engine.Execute("cat empty.txt")).To(Succeed())
			Expect(stdout.String()).To(BeEmpty())
		})

		It("fails on a directory", func() {
			Expect(memFS.MkdirAll("/home/user/docs")).To(Succeed())
			Expect(engine.Execute("cat docs")).To(MatchError(errors.ErrOperationFailed))
		})

		It("fails on a missing file", func() {
			Expect(engine.Execute("cat missing.txt")).To(MatchError(errors.ErrOperationFailed))
		})
	})

	Describe("add", func() {
		It("creates an empty file", func() {
			Expect(engine.Execute("add new.txt")).To(Succeed())
			Expect(exists("/home/user/new.txt")).To(BeTrue())
			Expect(readFile("/home/user/new.txt")).To(BeEmpty())
		})

		It("fails the second time without touching the file", func() {
			Expect(engine.Execute("add new.txt")).To(Succeed())
			writeFiles(map[string]string{"/home/user/new.txt": "keep me"})

			Expect(engine.Execute("add new.txt")).To(MatchError(errors.ErrOperationFailed))
			Expect(readFile("/home/user/new.txt")).To(Equal("keep me"))
		})

		It("fails when the parent directory is missing", func() {
			Expect(engine.Execute("add missing/new.txt")).To(MatchError(errors.ErrOperationFailed))
		})
	})

	Describe("rn", func() {
		BeforeEach(func() {
			writeFiles(map[string]string{
				"/home/user/docs/old.txt":   "contents",
				"/home/user/docs/taken.txt": "other",
			})
		})

		It("renames within the same directory", func() {
			Expect(engine.Execute("rn docs/old.txt new.txt")).To(Succeed())
			Expect(exists("/home/user/docs/old.txt")).To(BeFalse())
			Expect(readFile("/home/user/docs/new.txt")).To(Equal("contents"))
		})

		It("only uses the base name of the new name", func() {
			Expect(engine.Execute("rn docs/old.txt ../elsewhere/new.txt")).To(Succeed())
			Expect(readFile("/home/user/docs/new.txt")).To(Equal("contents"))
			Expect(exists("/home/elsewhere/new.txt")).To(BeFalse())
		})

		It("refuses to overwrite an existing entry", func() {
			Expect(engine.Execute("rn docs/old.txt taken.txt")).To(MatchError(errors.ErrOperationFailed))
			Expect(readFile("/home/user/docs/old.txt")).To(Equal("contents"))
			Expect(readFile("/home/user/docs/taken.txt")).To(Equal("other"))
		})

		It("fails when the source is missing", func() {
			Expect(engine.Execute("rn docs/missing.txt new.txt")).To(MatchError(errors.ErrOperationFailed))
			Expect(exists("/home/user/docs/new.txt")).To(BeFalse())
		})
	})

	Describe("cp", func() {
		BeforeEach(func() {
			writeFiles(map[string]string{
				"/home/user/src.bin":      "\x00\x01binary\xffdata",
				"/home/user/target/.keep": "",
			})
		})

		It("copies the bytes and keeps the source", func() {
			Expect(engine.Execute("cp src.bin target")).To(Succeed())
			Expect(readFile("/home/user/target/src.bin")).To(Equal("\x00\x01binary\xffdata"))
			Expect(readFile("/home/user/src.bin")).To(Equal("\x00\x01binary\xffdata"))
		})

		It("overwrites an existing copy", func() {
			writeFiles(map[string]string{"/home/user/target/src.bin": "stale contents that are longer"})

			Expect(engine.Execute("cp src.bin /home/user/target")).To(Succeed())
			Expect(readFile("/home/user/target/src.bin")).To(Equal("\x00\x01binary\xffdata"))
		})

		It("fails when the destination is not a directory", func() {
			Expect(engine.Execute("cp src.bin src.bin")).To(MatchError(errors.ErrOperationFailed))
			Expect(readFile("/home/user/src.bin")).To(Equal("\x00\x01binary\xffdata"))
		})

		It("refuses to copy a file onto itself", func() {
			Expect(engine.Execute("cp src.bin .")).To(MatchError(errors.ErrOperationFailed))
			Expect(readFile("/home/user/src.bin")).To(Equal("\x00\x01binary\xffdata"))
		})

		It("refuses to copy a file onto itself through an uncleaned absolute path", func() {
			Expect(engine.Execute("cp /home/user/./src.bin /home/user")).To(MatchError(errors.ErrOperationFailed))
			Expect(engine.Execute("cp /home/user//src.bin /home/user/target/..")).To(MatchError(errors.ErrOperationFailed))
			Expect(readFile("/home/user/src.bin")).To(Equal("\x00\x01binary\xffdata"))
		})

		It("fails on a directory source", func() {
			Expect(engine.Execute("cp target /home")).To(MatchError(errors.ErrOperationFailed))
		})
	})

	Describe("mv", func() {
		BeforeEach(func() {
			writeFiles(map[string]string{
				"/home/user/src.txt":      "payload",
				"/home/user/target/.keep": "",
			})
		})

		It("copies the bytes and removes the source", func() {
			Expect(engine.Execute("mv src.txt target")).To(Succeed())
			Expect(readFile("/home/user/target/src.txt")).To(Equal("payload"))
			Expect(exists("/home/user/src.txt")).To(BeFalse())
		})

		It("keeps the only copy when asked to move a file onto itself", func() {
			Expect(engine.Execute("mv /home/user//src.txt /home/user")).To(MatchError(errors.ErrOperationFailed))
			Expect(engine.Execute("mv /home/user/./src.txt .")).To(MatchError(errors.ErrOperationFailed))
			Expect(readFile("/home/user/src.txt")).To(Equal("payload"))
		})

		It("leaves the source untouched when the copy fails", func() {
			Expect(engine.Execute("mv src.txt missing")).To(MatchError(errors.ErrOperationFailed))
			Expect(readFile("/home/user/src.txt")).To(Equal("payload"))
		})

		It("reports a failure and keeps both files when the source cannot be removed", func() {
			mockFS.MockRemove = func(string) error { return errors.New("read-only") }

			Expect(engine.Execute("mv src.txt target")).To(MatchError(errors.ErrOperationFailed))
			Expect(readFile("/home/user/src.txt")).To(Equal("payload"))
			Expect(readFile("/home/user/target/src.txt")).To(Equal("payload"))
		})
	})

	Describe("rm", func() {
		It("deletes a file", func() {
			writeFiles(map[string]string{"/home/user/gone.txt": "x"})

			Expect(engine.Execute("rm gone.txt")).To(Succeed())
			Expect(exists("/home/user/gone.txt")).To(BeFalse())
		})

		It("refuses to delete a directory", func() {
			Expect(memFS.MkdirAll("/home/user/empty")).To(Succeed())

			Expect(engine.Execute("rm empty")).To(MatchError(errors.ErrOperationFailed))
			Expect(exists("/home/user/empty")).To(BeTrue())
		})

		It("fails on a missing file", func() {
			Expect(engine.Execute("rm gone.txt")).To(MatchError(errors.ErrOperationFailed))
		})
	})

	Describe("os", func() {
		BeforeEach(func() {
			sysInfo.MockEOL = func() string { return "\r\n" }
			sysInfo.MockHomeDir = func() (string, error) { return "/home/user", nil }
			sysInfo.MockUsername = func() (string, error) { return "alice", nil }
			sysInfo.MockArchitecture = func() string { return "arm64" }
			sysInfo.MockCPUs = func() ([]sysinfo.CPU, error) {
				return []sysinfo.CPU{
					{Model: "Example CPU", SpeedMHz: 2400},
					{Model: "Example CPU", SpeedMHz: 2400},
				}, nil
			}
		})

		It("prints the quoted line ending", func() {
			Expect(engine.Execute("os --EOL")).To(Succeed())
			Expect(stdout.String()).To(Equal("\"\\r\\n\"\n"))
		})

		It("prints the CPUs", func() {
			Expect(engine.Execute("os --cpus")).To(Succeed())
			Expect(stdout.String()).To(HavePrefix(messages.CPUCount(2) + "\n"))
			Expect(stdout.String()).To(ContainSubstring("Example CPU"))
			Expect(stdout.String()).To(ContainSubstring("2.40 GHz"))
		})

		It("fails when the CPUs cannot be inspected", func() {
			sysInfo.MockCPUs = func() ([]sysinfo.CPU, error) { return nil, errors.New("no /proc") }
			Expect(engine.Execute("os --cpus")).To(MatchError(errors.ErrOperationFailed))
		})

		It("prints the home directory", func() {
			Expect(engine.Execute("os --homedir")).To(Succeed())
			Expect(stdout.String()).To(Equal("/home/user\n"))
		})

		It("prints the system user name", func() {
			Expect(engine.Execute("os --username")).To(Succeed())
			Expect(stdout.String()).To(Equal("alice\n"))
		})

		It("prints the architecture", func() {
			Expect(engine.Execute("os --architecture")).To(Succeed())
			Expect(stdout.String()).To(Equal("arm64\n"))
		})

		It("rejects unknown flags as invalid input", func() {
			Expect(engine.Execute("os --kernel")).To(MatchError(errors.ErrInvalidInput))
			Expect(stdout.String()).To(BeEmpty())
		})

		It("treats flags case-sensitively", func() {
			Expect(engine.Execute("os --eol")).To(MatchError(errors.ErrInvalidInput))
		})
	})

	Describe("hash", func() {
		BeforeEach(func() {
			writeFiles(map[string]string{
				"/home/user/abc.txt": "abc",
				"/home/user/abd.txt": "abd",
			})
		})

		It("prints the lowercase hex SHA-256 digest", func() {
			Expect(engine.Execute("hash abc.txt")).To(Succeed())
			Expect(stdout.String()).To(Equal("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n"))
		})

		It("is deterministic and sensitive to a single byte", func() {
			Expect(engine.Execute("hash abc.txt")).To(Succeed())
			first := stdout.String()
			stdout.Reset()

			Expect(engine.Execute("hash /home/user/abc.txt")).To(Succeed())
			Expect(stdout.String()).To(Equal(first))
			stdout.Reset()

			Expect(engine.Execute("hash abd.txt")).To(Succeed())
			Expect(stdout.String()).NotTo(Equal(first))
		})

		Context("with another algorithm", func() {
			BeforeEach(func() {
				config.Digest = digest.SHA3256
			})

			It("uses it", func() {
				Expect(engine.Execute("hash abc.txt")).To(Succeed())
				Expect(stdout.String()).To(Equal("3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532\n"))
			})
		})

		It("fails on a missing file", func() {
			Expect(engine.Execute("hash missing.txt")).To(MatchError(errors.ErrOperationFailed))
			Expect(stdout.String()).To(BeEmpty())
		})
	})

	Describe("compress and decompress", func() {
		const original = "the quick brown fox jumps over the lazy dog\n"

		BeforeEach(func() {
			writeFiles(map[string]string{"/home/user/plain.txt": strings.Repeat(original, 64)})
		})

		DescribeTable("round trips",
			func(name string) {
				selected, err := codec.Lookup(name)
				Expect(err).NotTo(HaveOccurred())
				config.Codec = selected

				engine, err = cli.NewEngine(config)
				Expect(err).NotTo(HaveOccurred())

				Expect(engine.Execute("compress plain.txt plain.txt.z")).To(Succeed())
				Expect(len(readFile("/home/user/plain.txt.z"))).To(BeNumerically("<", len(readFile("/home/user/plain.txt"))))

				Expect(engine.Execute("decompress plain.txt.z restored.txt")).To(Succeed())
				Expect(readFile("/home/user/restored.txt")).To(Equal(strings.Repeat(original, 64)))
			},
			Entry("brotli", codec.Brotli),
			Entry("gzip", codec.Gzip),
			Entry("zstd", codec.Zstd),
		)

		Context("with input in another format", func() {
			BeforeEach(func() {
				gzip, err := codec.Lookup(codec.Gzip)
				Expect(err).NotTo(HaveOccurred())
				config.Codec = gzip
			})

			It("fails to decompress it", func() {
				Expect(engine.Execute("decompress plain.txt restored.txt")).To(MatchError(errors.ErrOperationFailed))
			})
		})

		It("refuses to write onto the source", func() {
			Expect(engine.Execute("compress plain.txt ./plain.txt")).To(MatchError(errors.ErrOperationFailed))
			Expect(engine.Execute("decompress /home/user/./plain.txt plain.txt")).To(MatchError(errors.ErrOperationFailed))
			Expect(readFile("/home/user/plain.txt")).To(Equal(strings.Repeat(original, 64)))
		})

		It("fails when the source is missing", func() {
			Expect(engine.Execute("compress missing.txt out.br")).To(MatchError(errors.ErrOperationFailed))
			Expect(exists("/home/user/out.br")).To(BeFalse())
		})
	})
})
