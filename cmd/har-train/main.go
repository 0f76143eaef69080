// Command har-train trains a stacked LSTM + softmax classifier on
// human-activity sensor windows with cross-entropy loss, optionally
// stateful across consecutive windows from the same recording.
//
// Raw per-sample sensor readings are expected one file per
// (experiment, subject) pair, named "exp<EE>_user<UU>.txt" under the
// input directory, each line six whitespace-separated floats. Activity
// segmentation comes from a single label file (FileList names its path)
// in the HAR label format: "experiment_id subject_id activity_id
// start_sample end_sample".
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/katalvlaran/seqrnn/config"
	"github.com/katalvlaran/seqrnn/dataset"
	"github.com/katalvlaran/seqrnn/deltas"
	"github.com/katalvlaran/seqrnn/driver"
	"github.com/katalvlaran/seqrnn/featfile"
	"github.com/katalvlaran/seqrnn/layers"
	"github.com/katalvlaran/seqrnn/logx"
	"github.com/katalvlaran/seqrnn/modelio"
)

const (
	featureCount = 6
	numClasses   = 13 // 12 HAR activities + blank at index 0
	deltaWindow  = 2
	beamWidth    = 4
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		logx.Default().Warn("%v", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	log := logx.Default()
	cfg, err := config.Parse("har-train", args)
	if err != nil {
		return err
	}

	labelFile, err := os.Open(cfg.FileList)
	if err != nil {
		return err
	}
	labels, err := featfile.ParseHARLabels(labelFile)
	labelFile.Close()
	if err != nil {
		return err
	}

	data, err := buildHARDataset(cfg.InputDir, labels, log)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(1))
	chain, err := buildOrLoadChain(cfg, rng, featureCount*3)
	if err != nil {
		return err
	}

	drv, err := driver.New(chain, numClasses, 0, config.CrossEntropy, cfg.StateMode)
	if err != nil {
		return err
	}

	trainIdx, valIdx, _ := data.Split(1, 0.2, 0.2)
	trainData := subsetDataset(data, trainIdx)
	valData := subsetDataset(data, valIdx)

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
		classNames[i] = fmt.Sprintf("activity%d", i)
	}
	results, cm, err := drv.Evaluate(valData, beamWidth, classNames)
	if err != nil {
		return err
	}
	var frameSum float64
	for _, r := range results {
		frameSum += r.FrameSimilarity
	}
	if n := float64(len(results)); n > 0 {
		log.Info("validation frame similarity=%.4f", frameSum/n)
	}
	if f, err := os.Create("confusion.csv"); err == nil {
		_ = cm.WriteCSV(f)
		f.Close()
	}

	if cfg.StorePath != "" {
		f, err := os.Create(cfg.StorePath)
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
	return nil
}

func buildHARDataset(inputDir string, labels []featfile.HARLabel, log *logx.Logger) (*dataset.Dataset, error) {
	type key struct{ exp, subj int }
	cache := make(map[key][][]float64)
	d := &dataset.Dataset{}

	for _, lbl := range labels {
		k := key{lbl.ExperimentID, lbl.SubjectID}
		frames, ok := cache[k]
		if !ok {
			path := fmt.Sprintf("%s/exp%02d_user%02d.txt", inputDir, lbl.ExperimentID, lbl.SubjectID)
			f, err := os.Open(path)
			if err != nil {
				log.Warn("skipping unreadable recording %s: %v", path, err)
				cache[k] = nil
				continue
			}
			parsed, err := featfile.ParseRawFrames(f, featureCount)
			f.Close()
			if err != nil {
				log.Warn("skipping malformed recording %s: %v", path, err)
				cache[k] = nil
				continue
			}
			frames = parsed
			cache[k] = frames
		}
		if frames == nil {
			continue
		}

		start, end := lbl.StartSample, lbl.EndSample
		if start < 0 {
			start = 0
		}
		if end > len(frames) {
			end = len(frames)
		}
		if start >= end {
			continue
		}
		segment := frames[start:end]
		expanded := deltas.ExpandSingleWindow(segment, featureCount, deltaWindow)
		segLabels := make([]int, len(expanded))
		for i := range segLabels {
			segLabels[i] = lbl.ActivityID // 1-indexed activity; 0 stays reserved for blank
		}
		d.Frames = append(d.Frames, expanded...)
		d.Labels = append(d.Labels, segLabels...)
		d.Lengths = append(d.Lengths, len(expanded))
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
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
