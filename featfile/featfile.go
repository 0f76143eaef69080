package featfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/seqrnn/dataset"
	"github.com/katalvlaran/seqrnn/deltas"
)

// ParseRecords reads a feature file, skipping an optional header line
// that begins with "phoneme,", and returns one Record per well-formed
// phoneme line. A record with frame_count = 0 is skipped (not an error).
// featureCount is the configured frame width (14 for TIMIT, 6 for HAR);
// a record whose declared feature_count disagrees is reported as an error
// wrapping ErrDimensionMismatch whose message names the offending line
// (not a *ParseError).
func ParseRecords(r io.Reader, featureCount int) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var records []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		if strings.HasPrefix(raw, "phoneme,") {
			continue // optional header
		}

		// Fields may be comma- or whitespace-separated: normalize commas
		// to spaces first, then split on whitespace runs.
		normalized := strings.ReplaceAll(raw, ",", " ")
		fields := strings.Fields(normalized)
		if len(fields) < 7 {
			return nil, malformed(lineNo, "expected at least 7 fields, got %d", len(fields))
		}

		label, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, malformed(lineNo, "bad numeric_label %q: %v", fields[1], err)
		}
		startTime, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, malformed(lineNo, "bad start_time %q: %v", fields[2], err)
		}
		endTime, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, malformed(lineNo, "bad end_time %q: %v", fields[3], err)
		}
		sourceFile := fields[4]
		featCount, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, malformed(lineNo, "bad feature_count %q: %v", fields[5], err)
		}
		frameCount, err := strconv.Atoi(fields[6])
		if err != nil {
			return nil, malformed(lineNo, "bad frame_count %q: %v", fields[6], err)
		}
		if frameCount == 0 {
			continue
		}
		if featCount != featureCount {
			return nil, fmt.Errorf("%w: line %d: record declares %d, configured %d", ErrDimensionMismatch, lineNo, featCount, featureCount)
		}

		want := frameCount * featCount
		tail := fields[7:]
		if len(tail) != want {
			return nil, malformed(lineNo, "expected %d trailing floats (%d frames x %d features), got %d", want, frameCount, featCount, len(tail))
		}
		frames := make([][]float64, frameCount)
		for f := 0; f < frameCount; f++ {
			row := make([]float64, featCount)
			for c := 0; c < featCount; c++ {
				v, err := strconv.ParseFloat(tail[f*featCount+c], 64)
				if err != nil {
					return nil, malformed(lineNo, "bad feature value %q: %v", tail[f*featCount+c], err)
				}
				row[c] = v
			}
			frames[f] = row
		}

		records = append(records, Record{
			Phoneme:      fields[0],
			Label:        label,
			StartTime:    startTime,
			EndTime:      endTime,
			SourceFile:   sourceFile,
			FeatureCount: featCount,
			FrameCount:   frameCount,
			Frames:       frames,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return records, nil
}

// LoadFileList reads a plain-text file of one stem per line and returns
// the full paths formed by joining each stem with dir and a ".FEAT"
// suffix.
func LoadFileList(r io.Reader, dir string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var paths []string
	for scanner.Scan() {
		stem := strings.TrimSpace(scanner.Text())
		if stem == "" {
			continue
		}
		paths = append(paths, dir+"/"+stem+".FEAT")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return paths, nil
}

// ParseRawFrames reads a plain text file of whitespace-separated sensor
// readings, featureCount floats per line, with no header or record
// framing beyond the line itself — the raw-signal counterpart to the
// phoneme feature-file format's per-record frame block.
func ParseRawFrames(r io.Reader, featureCount int) ([][]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var frames [][]float64
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != featureCount {
			return nil, malformed(lineNo, "expected %d fields, got %d", featureCount, len(fields))
		}
		row := make([]float64, featureCount)
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, malformed(lineNo, "bad feature value %q: %v", f, err)
			}
			row[i] = v
		}
		frames = append(frames, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return frames, nil
}

// ParseHARLabels reads a HAR label file: space-separated
// "experiment_id subject_id activity_id start_sample end_sample" lines.
func ParseHARLabels(r io.Reader) ([]HARLabel, error) {
	scanner := bufio.NewScanner(r)
	var labels []HARLabel
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, malformed(lineNo, "expected 5 fields, got %d", len(fields))
		}
		ints := make([]int, 5)
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, malformed(lineNo, "bad integer field %q: %v", f, err)
			}
			ints[i] = v
		}
		labels = append(labels, HARLabel{
			ExperimentID: ints[0], SubjectID: ints[1], ActivityID: ints[2],
			StartSample: ints[3], EndSample: ints[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return labels, nil
}

// BuildDataset groups records by source file (in first-seen order),
// concatenates each group's raw frames into one sequence, marks the last
// frame of every phoneme with an end-of-phoneme offset (label+numClasses),
// expands raw features into delta/delta-delta columns per file (all of
// that file's frames together, matching the documented per-file — not
// per-phoneme — accounting this format uses), and returns the assembled
// dataset alongside the per-group source-file names in the same order.
// The EOP-encoded labels are left as-is; callers hand the result to
// driver.StripEOP before training or evaluation.
func BuildDataset(records []Record, numClasses, shortWindow, longWindow int) (*dataset.Dataset, []string, error) {
	var order []string
	groups := make(map[string][]Record)
	for _, rec := range records {
		if _, seen := groups[rec.SourceFile]; !seen {
			order = append(order, rec.SourceFile)
		}
		groups[rec.SourceFile] = append(groups[rec.SourceFile], rec)
	}

	d := &dataset.Dataset{}
	for _, file := range order {
		recs := groups[file]
		var raw [][]float64
		var labels []int
		featCount := recs[0].FeatureCount
		for _, rec := range recs {
			for i, frame := range rec.Frames {
				raw = append(raw, frame)
				lbl := rec.Label
				if i == len(rec.Frames)-1 {
					lbl += numClasses
				}
				labels = append(labels, lbl)
			}
		}
		expanded := deltas.Expand(raw, featCount, shortWindow, longWindow)
		d.Frames = append(d.Frames, expanded...)
		d.Labels = append(d.Labels, labels...)
		d.Lengths = append(d.Lengths, len(expanded))
	}
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}
	return d, order, nil
}
