package driver

import (
	"github.com/katalvlaran/seqrnn/align"
	"github.com/katalvlaran/seqrnn/beam"
	"github.com/katalvlaran/seqrnn/confusion"
	"github.com/katalvlaran/seqrnn/ctc"
	"github.com/katalvlaran/seqrnn/dataset"
	"github.com/katalvlaran/seqrnn/editdist"
)

// Evaluate forwards every sequence in data through the layer chain (with
// state reset between sequences) and reports the three similarity
// numbers §4.6 specifies, plus a confusion matrix accumulated from the
// beam-aligned pair. classNames must have NumClasses entries.
func (d *Driver) Evaluate(data *dataset.Dataset, beamWidth int, classNames []string) ([]Metrics, *confusion.Matrix, error) {
	if data.NumSequences() == 0 {
		return nil, nil, ErrNoSequences
	}

	cm := confusion.NewMatrix(classNames)
	results := make([]Metrics, 0, data.NumSequences())

	for i := 0; i < data.NumSequences(); i++ {
		frames, labels := data.Sequence(i)
		d.resetState()
		d.setBatchSize(1)

		yp := make([][]float64, len(frames))
		for t, frame := range frames {
			out := d.forward([][]float64{frame})
			yp[t] = out[0]
		}

		predArgmax := ctc.Argmax(yp)

		rawDist := editdist.Distance(predArgmax, labels)
		frameSim := similarity(rawDist, max(len(frames), 1))

		predDedup := ctc.CollapseAndStrip(predArgmax, d.Blank)
		trueDedup := ctc.CollapseAndStrip(labels, d.Blank)
		phDist := editdist.Distance(predDedup, trueDedup)
		phSim := similarity(phDist, max(len(predDedup), len(trueDedup)))

		beams, err := beam.Search(yp, beamWidth, d.Blank)
		if err != nil {
			return nil, nil, err
		}
		var beamTop []int
		if len(beams) > 0 {
			beamTop = beams[0].Prefix
		}
		// beam.Search's prefixes are already collapsed internally, but
		// collapsing explicitly here keeps this call site's correctness
		// independent of that internal detail, matching the phoneme-pair
		// collapsing a few lines up.
		beamTop = ctc.CollapseAndStrip(beamTop, d.Blank)

		rlen := 2 * max(max(len(beamTop), len(trueDedup)), 1)
		rp := make([]int, rlen)
		rt := make([]int, rlen)
		beamDist, err := align.Align(beamTop, trueDedup, d.Blank, rp, rt)
		if err != nil {
			return nil, nil, err
		}
		beamSim := similarity(beamDist, max(len(beamTop), len(trueDedup)))

		if err := cm.AccumulatePairs(rt, rp, d.Blank); err != nil {
			return nil, nil, err
		}

		results = append(results, Metrics{
			FrameSimilarity:   frameSim,
			PhonemeSimilarity: phSim,
			BeamSimilarity:    beamSim,
		})
	}
	return results, cm, nil
}

func similarity(dist, denom int) float64 {
	if denom == 0 {
		return 1
	}
	return 1 - float64(dist)/float64(denom)
}
