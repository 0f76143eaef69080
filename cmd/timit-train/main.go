// Command timit-train trains a stacked LSTM + softmax classifier on TIMIT
// phoneme feature files with CTC or cross-entropy loss (-c), reporting frame/phoneme/beam-aligned
// similarity and a confusion matrix against a held-out split.
package main

import (
	"math/rand"
	"os"
	"strconv"

	"github.com/katalvlaran/seqrnn/config"
	"github.com/katalvlaran/seqrnn/confusion"
	"github.com/katalvlaran/seqrnn/dataset"
	"github.com/katalvlaran/seqrnn/driver"
	"github.com/katalvlaran/seqrnn/featfile"
	"github.com/katalvlaran/seqrnn/layers"
	"github.com/katalvlaran/seqrnn/logx"
	"github.com/katalvlaran/seqrnn/modelio"
)

const (
	featureCount = 14
	numClasses   = 61 // TIMIT phoneme set, blank included at index 0
	beamWidth    = 8
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		logx.Default().Warn("%v", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	log := logx.Default()
	cfg, err := config.Parse("timit-train", args)
	if err != nil {
		return err
	}

	listFile, err := os.Open(cfg.FileList)
	if err != nil {
		return err
	}
	paths, err := featfile.LoadFileList(listFile, cfg.InputDir)
	listFile.Close()
	if err != nil {
		return err
	}

	var records []featfile.Record
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			log.Warn("skipping unreadable file %s: %v", p, err)
			continue
		}
		recs, err := featfile.ParseRecords(f, featureCount)
		f.Close()
		if err != nil {
			log.Warn("skipping malformed file %s: %v", p, err)
			continue
		}
		records = append(records, recs...)
	}

	raw, _, err := featfile.BuildDataset(records, numClasses, featfile.DefaultShortWindow, featfile.DefaultLongWindow)
	if err != nil {
		return err
	}
	data := driver.StripEOP(raw, numClasses)

	trainIdx, valIdx, _ := data.Split(1, 0.15, 0.15)
	trainData := subsetDataset(data, trainIdx)
	valData := subsetDataset(data, valIdx)

	rng := rand.New(rand.NewSource(1))
	chain, err := buildOrLoadChain(cfg, rng, featureCount*5)
	if err != nil {
		return err
	}

	drv, err := driver.New(chain, numClasses, 0, cfg.LossMode, config.Stateless)
	if err != nil {
		return err
	}

	early := driver.NewEarlyStop(cfg.Patience)
	epoch := 0
phases:
	for _, phase := range cfg.Schedule {
		for i := 0; i < phase.Epochs; i++ {
			epoch++
			result, err := drv.TrainEpoch(trainData, cfg.TrainBatchSize, phase.LR, phase.WeightDecay)
			if err != nil {
				return err
			}
			log.Info("epoch %d loss=%.4f acc=%.4f skipped=%d", epoch, result.AvgLoss, result.AvgAccuracy, result.SkippedBatches)

			if err := drv.Checkpoint(epoch, cfg.CheckpointEvery, cfg.StorePath); err != nil {
				return err
			}
			if early.Update(result.AvgLoss) {
				log.Info("early stop at epoch %d", epoch)
				break phases
			}
		}
	}

	classNames := make([]string, numClasses)
	for i := range classNames {
		classNames[i] = classNameFor(i)
	}
	results, cm, err := drv.Evaluate(valData, beamWidth, classNames)
	if err != nil {
		return err
	}
	var frameSum, phonemeSum, beamSum float64
	for _, r := range results {
		frameSum += r.FrameSimilarity
		phonemeSum += r.PhonemeSimilarity
		beamSum += r.BeamSimilarity
	}
	n := float64(len(results))
	if n > 0 {
		log.Info("validation frame=%.4f phoneme=%.4f beam=%.4f", frameSum/n, phonemeSum/n, beamSum/n)
	}
	if err := writeConfusionCSV(cm, "confusion.csv"); err != nil {
		return err
	}

	if cfg.StorePath != "" {
		if err := saveModel(chain, cfg.StorePath); err != nil {
			return err
		}
	}
	return nil
}

func buildOrLoadChain(cfg *config.Config, rng *rand.Rand, inSize int) ([]driver.Layer, error) {
	if cfg.LoadPath != "" {
		f, err := os.Open(cfg.LoadPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		loaded, err := modelio.Load(f, rng)
		if err != nil {
			return nil, err
		}
		chain := make([]driver.Layer, len(loaded))
		for i, l := range loaded {
			chain[i] = l.(driver.Layer)
		}
		return chain, nil
	}

	var chain []driver.Layer
	prev := inSize
	for _, h := range cfg.HiddenSizes {
		chain = append(chain, layers.NewLSTM(prev, h, rng))
		prev = h
	}
	chain = append(chain, layers.NewDense(prev, numClasses, layers.Softmax, rng))
	return chain, nil
}

func saveModel(chain []driver.Layer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	boxed := make([]any, len(chain))
	for i, l := range chain {
		boxed[i] = l
	}
	return modelio.Save(f, boxed)
}

func writeConfusionCSV(cm *confusion.Matrix, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return cm.WriteCSV(f)
}

func subsetDataset(d *dataset.Dataset, idx []int) *dataset.Dataset {
	out := &dataset.Dataset{}
	for _, i := range idx {
		frames, labels := d.Sequence(i)
		out.Frames = append(out.Frames, frames...)
		out.Labels = append(out.Labels, labels...)
		out.Lengths = append(out.Lengths, len(frames))
	}
	return out
}

func classNameFor(i int) string {
	if i == 0 {
		return "blank"
	}
	return "class" + strconv.Itoa(i)
}
