// suffine builds suffix array indexes over large text files and searches them.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/infinivision/suffine/builder"
	"github.com/infinivision/suffine/constant"
	"github.com/infinivision/suffine/index"
	"github.com/infinivision/suffine/mmap"
	"github.com/infinivision/suffine/multidoc"
	"github.com/urfave/cli/v2"
)

var (
	IndexFlag = &cli.StringFlag{
		Name:    "index",
		Aliases: []string{"i"},
		Usage:   "Index file path (default: FILE with its extension replaced by " + constant.IndexSuffix + ")",
	}
	BlockFlag = &cli.IntFlag{
		Name:    "block",
		Aliases: []string{"b"},
		Usage:   "Block size in MB",
	}
	WorkersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Number of blocks sorted concurrently",
	}
	TmpDirFlag = &cli.StringFlag{
		Name:  "tmpdir",
		Usage: "Directory for sorted block spill files",
	}
	ConfigFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	LogFlag = &cli.StringFlag{
		Name:  "log",
		Usage: "Write the log to this file, rotating it by size",
	}
	QueryFlag = &cli.StringFlag{
		Name:     "query",
		Aliases:  []string{"q"},
		Usage:    "Query string",
		Required: true,
	}
	CountFlag = &cli.IntFlag{
		Name:  "n",
		Usage: "Print only the first n hits (0 prints all)",
	}
	DelimiterFlag = &cli.StringFlag{
		Name:    "delimiter",
		Aliases: []string{"d"},
		Value:   "\n",
		Usage:   "String separating documents",
	}
)

var (
	indexCommand = &cli.Command{
		Name:      "index",
		Usage:     "Build the suffix array index of a text file",
		ArgsUsage: "FILE",
		Flags:     []cli.Flag{IndexFlag, BlockFlag, WorkersFlag, TmpDirFlag, ConfigFlag, LogFlag},
		Action:    indexAction,
	}
	searchCommand = &cli.Command{
		Name:      "search",
		Usage:     "Print the documents containing a query",
		ArgsUsage: "FILE",
		Flags:     []cli.Flag{QueryFlag, IndexFlag, CountFlag, DelimiterFlag},
		Action:    searchAction,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:     "suffine",
		Usage:    "suffix array indexing for large texts",
		Commands: []*cli.Command{indexCommand, searchCommand},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func filenames(ctx *cli.Context) (string, string, error) {
	if ctx.NArg() != 1 {
		return "", "", errors.Newf("expected exactly one FILE argument, got %d", ctx.NArg())
	}
	text := ctx.Args().First()
	if ctx.IsSet(IndexFlag.Name) {
		return text, ctx.String(IndexFlag.Name), nil
	}
	return text, strings.TrimSuffix(text, filepath.Ext(text)) + constant.IndexSuffix, nil
}

func makeConfig(ctx *cli.Context) (builder.Config, *logConfig, error) {
	var file suffineConfig

	cfg := builder.DefaultConfig()
	if ctx.IsSet(ConfigFlag.Name) {
		if err := loadConfig(ctx.String(ConfigFlag.Name), &file); err != nil {
			return cfg, nil, err
		}
	}
	file.Build.apply(&cfg)
	if ctx.IsSet(BlockFlag.Name) {
		cfg.BlockSize = ctx.Int(BlockFlag.Name) << 20
	}
	if ctx.IsSet(WorkersFlag.Name) {
		cfg.Workers = ctx.Int(WorkersFlag.Name)
	}
	if ctx.IsSet(TmpDirFlag.Name) {
		cfg.TempDir = ctx.String(TmpDirFlag.Name)
	}
	if ctx.IsSet(LogFlag.Name) {
		file.Log.File = ctx.String(LogFlag.Name)
	}
	return cfg, &file.Log, nil
}

func indexAction(ctx *cli.Context) error {
	textFile, indexFile, err := filenames(ctx)
	if err != nil {
		return err
	}
	cfg, lc, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	lw := lc.writer()
	defer lw.Close()
	cfg.LogWriter = lw

	text, err := mmap.Map(textFile)
	if err != nil {
		return err
	}
	defer mmap.Unmap(text)

	// a failed build must not leave a file the loader would accept
	tmp := indexFile + ".tmp"
	fp, err := os.Create(tmp)
	if err != nil {
		return err
	}
	st, err := builder.New(text, cfg).BuildToSink(fp)
	if err == nil {
		err = fp.Sync()
	}
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, indexFile); err != nil {
		os.Remove(tmp)
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "indexed %d positions in %d blocks to %s\n", st.Positions, st.Blocks, indexFile)
	return nil
}

func searchAction(ctx *cli.Context) error {
	textFile, indexFile, err := filenames(ctx)
	if err != nil {
		return err
	}
	text, err := mmap.Map(textFile)
	if err != nil {
		return err
	}
	defer mmap.Unmap(text)
	sa, err := mmap.Map(indexFile)
	if err != nil {
		return err
	}
	defer mmap.Unmap(sa)

	idx, err := index.FromBytes(text, sa)
	if err != nil {
		return err
	}
	m, err := multidoc.Build(idx, []byte(ctx.String(DelimiterFlag.Name)))
	if err != nil {
		return err
	}
	q := []byte(ctx.String(QueryFlag.Name))
	limit := ctx.Int(CountFlag.Name)
	hl := color.New(color.FgGreen, color.Bold)
	for itr, n := m.DocPositions(q), 0; itr.Valid() && (limit <= 0 || n < limit); itr.Next() {
		doc, _ := m.Doc(itr.DocID())
		fmt.Fprintln(ctx.App.Writer, highlight(doc, int(itr.Offset()), len(q), hl))
		n++
	}
	return nil
}

// highlight marks doc[off:off+n], clipped to the document.
func highlight(doc []byte, off, n int, hl *color.Color) string {
	if off > len(doc) {
		off = len(doc)
	}
	end := off + n
	if end > len(doc) {
		end = len(doc)
	}
	return string(doc[:off]) + hl.Sprint(string(doc[off:end])) + string(doc[end:])
}
