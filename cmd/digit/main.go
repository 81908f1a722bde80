// Command digit loads an MNIST-style dataset, dumps digits as ASCII art
// and runs a randomly initialized feed-forward network over single images.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/digit-ml/digit/dataset"
	"github.com/digit-ml/digit/internal/render"
	"github.com/digit-ml/digit/network"
)

const version = "v0.1.0"

func usage() {
	fmt.Println("digit - IDX dataset loader and feed-forward inference")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  show     Dump dataset digits as ASCII art")
	fmt.Println("  infer    Run one image through a random network")
	fmt.Println("  version  Show version")
}

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("digit %s\n", version)
	case "show":
		runShow(os.Args[2:])
	case "infer":
		runInfer(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func loadSplit(dataDir string, train bool) *dataset.Dataset {
	load := dataset.LoadTest
	if train {
		load = dataset.LoadTraining
	}
	ds, err := load(dataDir)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	return ds
}

func runShow(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	dataDir := fs.String("data", "./data", "Directory holding the MNIST files")
	train := fs.Bool("train", false, "Use the training split instead of the test split")
	index := fs.Int("index", 0, "First image index to show")
	count := fs.Int("count", 1, "Number of images to show")
	_ = fs.Parse(args)

	ds := loadSplit(*dataDir, *train)

	for i := *index; i < *index+*count; i++ {
		s, err := render.Sprint(ds, i)
		if err != nil {
			log.Fatalf("render image %d: %v", i, err)
		}
		fmt.Print(s)
	}
}

func runInfer(args []string) {
	fs := flag.NewFlagSet("infer", flag.ExitOnError)
	dataDir := fs.String("data", "./data", "Directory holding the MNIST files")
	train := fs.Bool("train", false, "Use the training split instead of the test split")
	index := fs.Int("index", 0, "Image index to run")
	seed := fs.Int64("seed", 1, "PRNG seed for weight initialization")
	hiddenLayers := fs.Int("hidden-layers", 2, "Number of hidden layers")
	hiddenNodes := fs.Int("hidden-nodes", 16, "Nodes per hidden layer")
	outputs := fs.Int("outputs", 10, "Output node count")
	_ = fs.Parse(args)

	ds := loadSplit(*dataDir, *train)

	image, err := ds.Image(*index)
	if err != nil {
		log.Fatalf("select image: %v", err)
	}
	label, err := ds.Label(*index)
	if err != nil {
		log.Fatalf("select label: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	net := network.New(ds.PixelCount(), network.Config{
		HiddenLayers: *hiddenLayers,
		HiddenNodes:  *hiddenNodes,
		OutputNodes:  *outputs,
	}, rng)

	out, err := net.Run(image)
	if err != nil {
		log.Fatalf("run network: %v", err)
	}

	fmt.Print(render.ASCII(image, ds.Rows(), ds.Cols()))
	fmt.Printf("label=%d\n", label)
	for i, v := range out {
		fmt.Printf("output[%d] = %.6f\n", i, v)
	}

	if int(label) < *outputs {
		cost, err := net.Cost(out, int(label))
		if err != nil {
			log.Fatalf("cost: %v", err)
		}
		for i, v := range cost {
			fmt.Printf("cost[%d] = %+.6f\n", i, v)
		}
	}
}
