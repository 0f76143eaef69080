package featfile

// Record is one parsed phoneme line from a feature file: a contiguous run
// of frame_count feature vectors, all sharing one class label, drawn from
// one source utterance.
type Record struct {
	Phoneme      string
	Label        int
	StartTime    float64
	EndTime      float64
	SourceFile   string
	FeatureCount int
	FrameCount   int
	Frames       [][]float64 // [FrameCount][FeatureCount]
}

// HARLabel is one line of a HAR activity-segmentation label file.
// ActivityID is 1-indexed per the source format.
type HARLabel struct {
	ExperimentID int
	SubjectID    int
	ActivityID   int
	StartSample  int
	EndSample    int
}

// Default delta-window sizes used when assembling sequences. These are
// not spelled out numerically in the feature-file contract beyond the
// short-window example; a short window of 2 and long window of 5 frames
// match the typical phoneme-recognition delta configuration the dataset
// format targets.
const (
	DefaultShortWindow = 2
	DefaultLongWindow  = 5
)
