package entities

import "github.com/decker502/fireworks/pkg/render"

func newRecorder() *render.Recorder {
	return render.NewRecorder(800, 600)
}
