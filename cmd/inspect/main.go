package main

import (
	"flag"
	"fmt"
	"os"

	"camera-path-export/internal/logging"
	"camera-path-export/internal/mathutil"
	"camera-path-export/internal/sampler"
	"camera-path-export/internal/scene"
	"camera-path-export/internal/transform"
)

func main() {
	scenePath := flag.String("scene", "", "Scene document")
	camera := flag.String("camera", "", "Camera to inspect")
	from := flag.Int("from", 0, "First frame (default: scene start)")
	to := flag.Int("to", 0, "Last frame (default: scene end)")
	flag.Parse()

	if *scenePath == "" || *camera == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect -scene file.yaml -camera name [-from N -to M]")
		os.Exit(2)
	}

	s, err := scene.Load(*scenePath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	start, end := s.FrameRange()
	win := sampler.Window{Start: start, End: end}
	if flagSet("from") {
		win.Start = *from
	}
	if flagSet("to") {
		win.End = *to
	}
	req := win
	win, clamped, empty := win.Clamp(start, end)
	if empty {
		fmt.Fprintf(os.Stderr, "Error: frames %d-%d select nothing in scene range %d-%d\n", req.Start, req.End, start, end)
		os.Exit(2)
	}
	if clamped {
		fmt.Fprintf(os.Stderr, "Warning: frames %d-%d clamped to %d-%d\n", req.Start, req.End, win.Start, win.End)
	}

	opts := sampler.Options{Window: &win}
	tracks, err := sampler.New(s, opts, logging.Discard()).Run([]string{*camera})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	tr := tracks[0]
	if tr.Err != nil {
		fmt.Printf("Error: %v\n", tr.Err)
		os.Exit(1)
	}
	fmt.Printf("Camera %s, frames %d-%d at %.3f fps\n", tr.Entity, win.Start, win.End, s.FrameRate())

	for _, raw := range tr.Samples {
		loc := raw.World.Col(3).Vec3()
		rot, _ := mathutil.Orthonormalize(raw.World.Mat3())
		eul := mathutil.DegVec3(mathutil.Mat3ToEuler(rot, mathutil.OrderXYZ))

		fmt.Printf("Frame %d\n", raw.Frame)
		fmt.Printf("  Source: loc (%.4f, %.4f, %.4f)  rot XYZ (%.3f, %.3f, %.3f)  fov %.3f\n",
			loc[0], loc[1], loc[2], eul[0], eul[1], eul[2], raw.FOV)

		out, err := transform.Convert(raw)
		if err != nil {
			fmt.Printf("  Target: %v\n", err)
			continue
		}
		fmt.Printf("  Target: pos (%.3f, %.3f, %.3f)  rot (%.3f, %.3f, %.3f)\n",
			out.Position[0], out.Position[1], out.Position[2],
			out.Rotation[0], out.Rotation[1], out.Rotation[2])
	}
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
