package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/HuXin0817/painting/pkg/models/model"
	"github.com/gdamore/tcell/v2"
	"github.com/logrusorgru/aurora"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	ViewConf  = model.Off
	ColorConf = model.On
)

func init() {
	flag.Var(&ViewConf, "View", "show the paintings in a terminal view (On/Off)")
	flag.Var(&ColorConf, "Color", "colour the output (On/Off)")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] script.yaml...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	logx.DisableStat()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	results, err := runScripts(paths)
	if err != nil {
		logx.Must(err)
	}

	au := aurora.NewAurora(bool(ColorConf))
	for _, r := range results {
		PrintResult(os.Stdout, au, r)
	}
	PrintSummary(os.Stdout, au, results)

	if ViewConf {
		screen, err := tcell.NewScreen()
		if err != nil {
			logx.Must(err)
		}
		if err := View(screen, results); err != nil {
			logx.Must(err)
		}
	}
}

func runScripts(paths []string) (results []*Result, err error) {
	bar := model.NewBar(len(paths), "Painting...")
	defer bar.Close()

	for _, path := range paths {
		bar.Describe(path)

		script, err := LoadScript(path)
		if err != nil {
			return nil, err
		}

		r, err := script.Run()
		if err != nil {
			return nil, err
		}

		results = append(results, r)
		bar.Add(1)
	}

	return results, nil
}
