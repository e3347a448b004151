// Command rtminfo reports the math kernel backend and converts rotations
// between representations.
//
// Usage:
//
//	rtminfo [flags]
//
// Without flags it prints the detected CPU features and the kernel backends.
//
// Examples:
//
//	rtminfo
//	rtminfo -euler 0,90,0 -deg
//	rtminfo -axis 0,0,1 -angle 1.5708
//	rtminfo -quat 0,0,0.7071,0.7071
//	rtminfo -gltf rig.gltf -world
//	ALGO_RTM_NO_SIMD=1 rtminfo
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/qmuntal/gltf"

	"github.com/cwbudde/algo-rtm/internal/cpu"
	"github.com/cwbudde/algo-rtm/internal/kernel"
	"github.com/cwbudde/algo-rtm/internal/kernel/registry"
	"github.com/cwbudde/algo-rtm/interop/gltfnode"
	"github.com/cwbudde/algo-rtm/rtm/quat"
	"github.com/cwbudde/algo-rtm/rtm/scalar"
	"github.com/cwbudde/algo-rtm/rtm/vector4"
)

func main() {
	backend := flag.String("backend", "", "pin a kernel backend by name (see -list)")
	list := flag.Bool("list", false, "list registered kernel backends")
	euler := flag.String("euler", "", "pitch,yaw,roll to convert to a quaternion")
	axis := flag.String("axis", "", "x,y,z rotation axis, used with -angle")
	angle := flag.Float64("angle", 0, "rotation angle for -axis")
	quatFlag := flag.String("quat", "", "x,y,z,w quaternion to decompose")
	deg := flag.Bool("deg", false, "angles are given and printed in degrees")
	gltfPath := flag.String("gltf", "", "glTF file whose node rotations are printed")
	world := flag.Bool("world", false, "with -gltf, print world instead of local rotations")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rtminfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Reports the vector/quaternion kernel backend and converts rotations.\n")
		fmt.Fprintf(os.Stderr, "Set %s=1 to force the generic backend.\n\n", cpu.NoSIMDEnv)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  rtminfo -euler 0,90,0 -deg\n")
		fmt.Fprintf(os.Stderr, "  rtminfo -axis 0,0,1 -angle 1.5708\n")
		fmt.Fprintf(os.Stderr, "  rtminfo -gltf rig.gltf -world\n")
	}
	flag.Parse()

	if *backend != "" {
		if err := kernel.Use(*backend); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *list {
		for _, name := range kernel.Backends() {
			fmt.Println(name)
		}
		return
	}

	var err error
	switch {
	case *euler != "":
		err = printEuler(os.Stdout, *euler, *deg)
	case *axis != "":
		err = printAxisAngle(os.Stdout, *axis, *angle, *deg)
	case *quatFlag != "":
		err = printQuat(os.Stdout, *quatFlag, *deg)
	case *gltfPath != "":
		err = printGLTF(os.Stdout, *gltfPath, *world, *deg)
	default:
		err = printBackends(os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// parseFloats parses a comma-separated list of exactly n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %d in %q", n, len(parts), s)
	}

	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

func toRad(x float64, deg bool) float64 {
	if deg {
		return scalar.DegToRad(x)
	}
	return x
}

func fromRad(x float64, deg bool) float64 {
	if deg {
		return scalar.RadToDeg(x)
	}
	return x
}

func printBackends(w io.Writer) error {
	f := cpu.DetectFeatures()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Architecture\t%s\n", f.Architecture)
	fmt.Fprintf(tw, "Features\t%s\n", featureList(f))
	fmt.Fprintf(tw, "Active backend\t%s\n", kernel.Active())
	fmt.Fprintf(tw, "\n")
	fmt.Fprintf(tw, "Backend\tSIMD\tPriority\tSupported\n")
	fmt.Fprintf(tw, "-------\t----\t--------\t---------\n")

	for _, e := range registry.Global.ListEntries() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%t\n", e.Name, e.SIMDLevel, e.Priority, cpu.Supports(f, e.SIMDLevel))
	}

	return tw.Flush()
}

func featureList(f cpu.Features) string {
	var names []string
	for _, c := range []struct {
		name string
		on   bool
	}{
		{"SSE2", f.HasSSE2},
		{"AVX", f.HasAVX},
		{"AVX2", f.HasAVX2},
		{"FMA", f.HasFMA},
		{"AVX512", f.HasAVX512},
		{"NEON", f.HasNEON},
		{"force-generic", f.ForceGeneric},
	} {
		if c.on {
			names = append(names, c.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, " ")
}

func printEuler(w io.Writer, arg string, deg bool) error {
	v, err := parseFloats(arg, 3)
	if err != nil {
		return fmt.Errorf("-euler: %w", err)
	}

	q := quat.FromEuler64(toRad(v[0], deg), toRad(v[1], deg), toRad(v[2], deg))
	return describe(w, q, deg)
}

func printAxisAngle(w io.Writer, arg string, angle float64, deg bool) error {
	v, err := parseFloats(arg, 3)
	if err != nil {
		return fmt.Errorf("-axis: %w", err)
	}

	axis := vector4.Set64(v[0], v[1], v[2], 0)
	if axis.LengthSquared3() == 0 {
		return errors.New("-axis: zero-length axis")
	}

	q := quat.FromAxisAngle64(axis.Normalize3(), toRad(angle, deg))
	return describe(w, q, deg)
}

func printQuat(w io.Writer, arg string, deg bool) error {
	v, err := parseFloats(arg, 4)
	if err != nil {
		return fmt.Errorf("-quat: %w", err)
	}

	q := quat.UnalignedLoad64(v)
	if !q.IsFinite() {
		return errors.New("-quat: non-finite component")
	}
	if !q.IsNormalized(scalar.DefaultThreshold) {
		fmt.Fprintf(w, "note: input length %.6f, normalizing\n", q.Length())
		q = q.Normalize()
	}

	return describe(w, q, deg)
}

func describe(w io.Writer, q quat.Quat64, deg bool) error {
	axis, angle := q.ToAxisAngle()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Quaternion\t(%.6f, %.6f, %.6f, %.6f)\n", q.X(), q.Y(), q.Z(), q.W())
	fmt.Fprintf(tw, "Axis\t(%.6f, %.6f, %.6f)\n", axis.X(), axis.Y(), axis.Z())
	fmt.Fprintf(tw, "Angle\t%.6f\n", fromRad(angle, deg))
	fmt.Fprintf(tw, "Near identity\t%t\n", q.NearIdentity(quat.DefaultNearIdentityAngle))

	return tw.Flush()
}

func printGLTF(w io.Writer, path string, world, deg bool) error {
	doc, err := gltf.Open(path)
	if err != nil {
		return err
	}

	rots, err := gltfnode.LocalRotations(doc)
	if world && err == nil {
		rots, err = gltfnode.WorldRotations(doc)
	}
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Node\tName\tRotation (x, y, z, w)\tAxis\tAngle\n")
	fmt.Fprintf(tw, "----\t----\t---------------------\t----\t-----\n")

	for i, q := range rots {
		axis, angle := q.ToAxisAngle()
		fmt.Fprintf(tw, "%d\t%s\t(%.4f, %.4f, %.4f, %.4f)\t(%.4f, %.4f, %.4f)\t%.4f\n",
			i, doc.Nodes[i].Name,
			q.X(), q.Y(), q.Z(), q.W(),
			axis.X(), axis.Y(), axis.Z(),
			fromRad(angle, deg))
	}

	return tw.Flush()
}
