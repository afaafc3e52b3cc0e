package app

import (
	"bytes"
	"errors"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cwbudde/datplot/display"
	"github.com/cwbudde/datplot/internal/cli"
	"github.com/cwbudde/datplot/internal/logging"
	"github.com/cwbudde/datplot/internal/testutil"
	"github.com/cwbudde/datplot/smooth"
	"github.com/cwbudde/datplot/table"
)

type recordingViewer struct {
	calls      []string
	titles     []string
	sizeAtShow int64
	err        error
}

func (r *recordingViewer) Show(title, path string) error {
	r.calls = append(r.calls, path)
	r.titles = append(r.titles, title)
	if info, err := os.Stat(path); err == nil {
		r.sizeAtShow = info.Size()
	}
	return r.err
}

func writeDat(dir, basename, content string) {
	path := filepath.Join(dir, basename+cli.InputExt)
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
}

var _ = Describe("Run", func() {
	var (
		inDir  string
		outDir string
		viewer *recordingViewer
		log    logr.Logger
		opts   cli.Options
	)

	BeforeEach(func() {
		inDir = GinkgoT().TempDir()
		outDir = GinkgoT().TempDir()
		viewer = &recordingViewer{}

		var err error
		log, err = logging.New(logging.LevelTrace, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		opts = cli.Options{Basename: "test", InputDir: inDir, OutputDir: outDir}
	})

	Context("with a small well-formed file", func() {
		BeforeEach(func() {
			writeDat(inDir, "test", "0 1\n1 2\n2 4\n")
		})

		It("writes <basename>.png without opening a window", func() {
			Expect(Run(opts, viewer, log)).To(Succeed())

			info, err := os.Stat(filepath.Join(outDir, "test.png"))
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Size()).To(BeNumerically(">", 0))
			Expect(viewer.calls).To(BeEmpty())
		})

		It("writes a decodable 640x480 PNG", func() {
			Expect(Run(opts, viewer, log)).To(Succeed())

			f, err := os.Open(filepath.Join(outDir, "test.png"))
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()
			cfg, format, err := image.DecodeConfig(f)
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal("png"))
			Expect(cfg.Width).To(Equal(640))
			Expect(cfg.Height).To(Equal(480))
		})

		It("opens the saved image when show is set", func() {
			opts.Show = true
			Expect(Run(opts, viewer, log)).To(Succeed())

			Expect(viewer.calls).To(Equal([]string{filepath.Join(outDir, "test.png")}))
			Expect(viewer.titles).To(Equal([]string{"test"}))
			Expect(viewer.sizeAtShow).To(BeNumerically(">", 0))
		})

		It("returns the viewer's error", func() {
			opts.Show = true
			viewer.err = errors.New("no display")
			Expect(Run(opts, viewer, log)).To(MatchError("no display"))
		})

		It("rejects show without a viewer", func() {
			opts.Show = true
			Expect(Run(opts, nil, log)).To(HaveOccurred())
		})

		It("accepts average on short input", func() {
			opts.Average = true
			Expect(Run(opts, viewer, log)).To(Succeed())
			Expect(filepath.Join(outDir, "test.png")).To(BeAnExistingFile())
		})

		It("dumps every plotted row at trace level only", func() {
			var buf bytes.Buffer
			traceLog, err := logging.New(logging.LevelTrace, &buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(Run(opts, viewer, traceLog)).To(Succeed())
			Expect(bytes.Count(buf.Bytes(), []byte("Plotted row"))).To(Equal(3))

			buf.Reset()
			debugLog, err := logging.New(logging.LevelDebug, &buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(Run(opts, viewer, debugLog)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("Series summary"))
			Expect(buf.String()).NotTo(ContainSubstring("Plotted row"))
		})

		It("works with ViewerFunc", func() {
			opts.Show = true
			var shown string
			v := display.ViewerFunc(func(_, path string) error {
				shown = path
				return nil
			})
			Expect(Run(opts, v, log)).To(Succeed())
			Expect(shown).To(Equal(filepath.Join(outDir, "test.png")))
		})
	})

	Context("with a commented simulation trace", func() {
		It("ignores comment lines and trailing separators", func() {
			rows := testutil.EnergyCurve(3, 260, 60, 0.02)
			writeDat(inDir, "test", "# volume epot\n"+testutil.FormatRows(rows))
			opts.Average = true

			Expect(Run(opts, viewer, log)).To(Succeed())
			Expect(filepath.Join(outDir, "test.png")).To(BeAnExistingFile())
		})
	})

	Context("when the input file is missing", func() {
		It("fails and does not create an image", func() {
			opts.Basename = "absent"
			opts.Show = true

			err := Run(opts, viewer, log)
			Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())
			Expect(filepath.Join(outDir, "absent.png")).NotTo(BeAnExistingFile())
			Expect(viewer.calls).To(BeEmpty())
		})
	})

	Context("when the input is malformed", func() {
		It("reports ragged rows", func() {
			writeDat(inDir, "test", "0 1\n1 2 3\n")
			Expect(Run(opts, viewer, log)).To(MatchError(table.ErrRagged))
			Expect(filepath.Join(outDir, "test.png")).NotTo(BeAnExistingFile())
		})

		It("reports non-numeric tokens", func() {
			writeDat(inDir, "test", "0 1\n1 two\n")
			Expect(Run(opts, viewer, log)).To(MatchError(table.ErrMalformed))
		})
	})

	Context("when the output directory is not writable", func() {
		It("returns the I/O error", func() {
			writeDat(inDir, "test", "0 1\n1 2\n")
			opts.OutputDir = filepath.Join(outDir, "missing")
			Expect(errors.Is(Run(opts, viewer, log), fs.ErrNotExist)).To(BeTrue())
		})
	})
})

var _ = Describe("the smoothing stage", func() {
	It("leaves X alone and smooths Y exactly as the window rule describes", func() {
		rows := testutil.EnergyCurve(11, 150, 60, 0.05)
		tbl, err := table.New(rows)
		Expect(err).NotTo(HaveOccurred())

		x := tbl.Independent()
		win := smooth.Apply(tbl.Dependent())
		Expect(win).To(Equal(3))

		Expect(tbl.Independent()).To(Equal(x))
		y := tbl.Dependent()
		for i := 0; i < len(rows)-win; i++ {
			want := (rows[i][1] + rows[i+1][1] + rows[i+2][1]) / 3
			Expect(y.At(i, 0)).To(BeNumerically("~", want, 1e-12))
		}
		for i := len(rows) - win; i < len(rows); i++ {
			Expect(y.At(i, 0)).To(Equal(rows[i][1]))
		}
	})
})
