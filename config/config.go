package config

import (
	"flag"
	"strconv"
	"strings"
)

// ParseLRSchedule parses a comma-separated "epochs:lr:wd" phase list,
// e.g. "12:0.001:0.01,6:0.0001:0.01,3:0.00001:0".
func ParseLRSchedule(s string) (Schedule, error) {
	parts := strings.Split(s, ",")
	schedule := make(Schedule, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, malformedPhase(part, "expected epochs:lr:wd")
		}
		epochs, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, malformedPhase(part, "bad epochs: "+err.Error())
		}
		lr, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, malformedPhase(part, "bad lr: "+err.Error())
		}
		wd, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, malformedPhase(part, "bad wd: "+err.Error())
		}
		schedule = append(schedule, Phase{Epochs: epochs, LR: lr, WeightDecay: wd})
	}
	return schedule, nil
}

// ParseHiddenSizes parses a whitespace-separated list of hidden layer
// widths, e.g. "128 64".
func ParseHiddenSizes(s string) ([]int, error) {
	fields := strings.Fields(s)
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// ParseBatchSize parses "B" or "B:Tb" into a train batch size and an
// optional test batch size (0 meaning "use the train batch size").
func ParseBatchSize(s string) (train, test int, err error) {
	fields := strings.Split(s, ":")
	train, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	if len(fields) == 1 {
		return train, 0, nil
	}
	test, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return train, test, nil
}

// Parse builds a Config from a training entry point's command-line
// arguments (excluding argv[0]). name is used as the flag.FlagSet name
// for usage output.
func Parse(name string, args []string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	epochs := fs.Int("e", 10, "epochs")
	lr := fs.String("r", "0.001", "learning rate, or a full epochs:lr:wd[,...] schedule")
	wd := fs.Float64("w", 0.0, "weight decay")
	batch := fs.String("b", "32", "train batch size, optionally B:Tb")
	hidden := fs.String("L", "128", "hidden layer sizes, space-separated")
	loadPath := fs.String("l", "", "load model file")
	storePath := fs.String("s", "", "store model file")
	stateMode := fs.String("S", "stateless", "stateful|stateless")
	lossMode := fs.String("c", "ctc", "ctc|cross-entropy")
	checkpoint := fs.Int("k", 0, "checkpoint every N epochs (0 disables)")
	patience := fs.Int("p", 0, "early-stop patience in epochs (0 disables)")
	inputDir := fs.String("i", "", "input data directory")
	fileList := fs.String("f", "", "file-list manifest path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		LoadPath:        *loadPath,
		StorePath:       *storePath,
		CheckpointEvery: *checkpoint,
		Patience:        *patience,
		InputDir:        *inputDir,
		FileList:        *fileList,
	}

	var schedule Schedule
	var err error
	if strings.Contains(*lr, ":") {
		schedule, err = ParseLRSchedule(*lr)
		if err != nil {
			return nil, err
		}
	} else {
		lrVal, perr := strconv.ParseFloat(*lr, 64)
		if perr != nil {
			return nil, perr
		}
		schedule = Schedule{{Epochs: *epochs, LR: lrVal, WeightDecay: *wd}}
	}
	cfg.Schedule = schedule

	train, test, err := ParseBatchSize(*batch)
	if err != nil {
		return nil, err
	}
	cfg.TrainBatchSize, cfg.TestBatchSize = train, test

	hiddenSizes, err := ParseHiddenSizes(*hidden)
	if err != nil {
		return nil, err
	}
	cfg.HiddenSizes = hiddenSizes

	switch *stateMode {
	case "stateful":
		cfg.StateMode = Stateful
	case "stateless":
		cfg.StateMode = Stateless
	default:
		return nil, ErrInvalidStateMode
	}

	switch *lossMode {
	case "ctc":
		cfg.LossMode = CTC
	case "cross-entropy":
		cfg.LossMode = CrossEntropy
	default:
		return nil, ErrInvalidLossMode
	}

	return cfg, nil
}
