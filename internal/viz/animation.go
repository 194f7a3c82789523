package viz

// Animation tracks trace playback. Frame always stays within
// [0, Total-1]; Advance either wraps or parks on the last frame
// depending on the loop setting.
type Animation struct {
	Frame   int
	Total   int
	Playing bool
	Loop    bool
}

func NewAnimation(total int, loop bool) Animation {
	if total < 1 {
		total = 1
	}
	return Animation{Total: total, Playing: true, Loop: loop}
}

// Advance moves to the next frame when playing. At the last frame it
// wraps when Loop is set, otherwise playback stops there.
func (a *Animation) Advance() {
	if !a.Playing {
		return
	}
	if a.Frame < a.Total-1 {
		a.Frame++
		return
	}
	if a.Loop {
		a.Frame = 0
	} else {
		a.Playing = false
	}
}

// Scrub moves the frame by dir steps and pauses playback.
func (a *Animation) Scrub(dir int) {
	a.Playing = false
	a.Frame += dir
	if a.Frame < 0 {
		a.Frame = 0
	}
	if a.Frame > a.Total-1 {
		a.Frame = a.Total - 1
	}
}

// Reset rewinds to the first frame and resumes playback.
func (a *Animation) Reset() {
	a.Frame = 0
	a.Playing = true
}

// Progress reports playback position in [0, 1].
func (a *Animation) Progress() float64 {
	if a.Total <= 1 {
		return 1
	}
	return float64(a.Frame) / float64(a.Total-1)
}

// Done reports a finished non-looping trace.
func (a *Animation) Done() bool {
	return !a.Loop && !a.Playing && a.Frame == a.Total-1
}
