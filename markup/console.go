package markup

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/term"

	"github.com/jolanger/attrline"
)

// Config collects console formatting parameters.
type Config struct {
	LineWidth int
	Context   *uax11.Context
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

// ConsoleFormat writes styled runs to a fixed-width console, visualizing
// span kinds with ANSI attributes.
type ConsoleFormat struct {
	colors map[attrline.Kind]*color.Color
}

// NewConsoleFormat creates a console formatter. colors maps span kinds to
// display attributes and may cover just a subset of the kinds appearing in
// the handled snapshots; nil selects the default palette.
func NewConsoleFormat(colors map[attrline.Kind]*color.Color) *ConsoleFormat {
	if colors == nil {
		colors = makeDefaultPalette()
	}
	return &ConsoleFormat{colors: colors}
}

func makeDefaultPalette() map[attrline.Kind]*color.Color {
	return map[attrline.Kind]*color.Color{
		attrline.Bold:             color.New(color.Bold),
		attrline.Italic:           color.New(color.Italic),
		attrline.CursorAlpha:      color.New(color.Faint),
		attrline.ComposeUnderline: color.New(color.Underline),
	}
}

// Print outputs text with its attribute spans to stdout, wrapped to the
// terminal width. A nil config is derived from the current terminal, with
// an East-Asian-width context from the user environment.
func (fw *ConsoleFormat) Print(text string, spans []attrline.Span, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return fw.Output(text, spans, os.Stdout, config)
}

// Output formats text with its spans onto w, breaking lines first-fit at
// UAX#14 break opportunities and measuring fragment widths in fixed-width
// positions.
func (fw *ConsoleFormat) Output(text string, spans []attrline.Span, w io.Writer, config *Config) error {
	if config == nil {
		return attrline.ErrIllegalArguments
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	breaks := firstFit(text, config.LineWidth, config.Context)
	lineStart, runeOff := 0, 0
	for _, b := range breaks {
		line := text[lineStart:b]
		if err := fw.writeStyled(line, runeOff, spans, w); err != nil {
			return err
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
		runeOff += utf8.RuneCountInString(line)
		lineStart = b
	}
	return nil
}

// firstFit collects line-end byte offsets, packing UAX#14 segments onto
// lines until the width runs out.
func firstFit(text string, linewidth int, context *uax11.Context) []int {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	breaks := make([]int, 0, 20)
	spaceleft := linewidth
	pos := 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		gstr := grapheme.StringFromString(frag)
		fraglen := uax11.StringWidth(gstr, context)
		tracer().Debugf("next segment: %q (len=%d|%d)", frag, fraglen, spaceleft)
		if fraglen >= spaceleft && pos > 0 {
			breaks = append(breaks, pos)
			spaceleft = linewidth
		}
		spaceleft -= fraglen
		pos += len(frag)
	}
	if len(breaks) == 0 || breaks[len(breaks)-1] != len(text) {
		breaks = append(breaks, len(text))
	}
	return breaks
}

// writeStyled emits one line as runs of uniformly-attributed text. base is
// the codepoint offset of the line start within the whole text.
func (fw *ConsoleFormat) writeStyled(line string, base int, spans []attrline.Span, w io.Writer) error {
	off := base
	runStart, bytePos := 0, 0
	prevMask := maskAt(spans, off)
	for bytePos < len(line) {
		m := maskAt(spans, off)
		if m != prevMask {
			if err := fw.styledWrite(line[runStart:bytePos], prevMask, w); err != nil {
				return err
			}
			runStart, prevMask = bytePos, m
		}
		_, wd := utf8.DecodeRuneInString(line[bytePos:])
		bytePos += wd
		off++
	}
	return fw.styledWrite(line[runStart:], prevMask, w)
}

// styledWrite renders one run. The first configured kind wins; runs with no
// configured kind are written plainly.
func (fw *ConsoleFormat) styledWrite(s string, m attrs, w io.Writer) error {
	if s == "" {
		return nil
	}
	order := []attrline.Kind{attrline.Bold, attrline.Italic, attrline.ComposeUnderline, attrline.CursorAlpha}
	for _, k := range order {
		if m&flagFor(k) == 0 {
			continue
		}
		if c, ok := fw.colors[k]; ok {
			_, err := c.Fprint(w, s)
			return err
		}
	}
	_, err := io.WriteString(w, s)
	return err
}
