// Package gltfnode converts glTF node transforms to and from rtm vectors and
// quaternions.
//
// glTF stores rotations as (x, y, z, w) unit quaternions, the same lane order
// as quat.Quat64, so conversion is a plain copy. Nodes that carry a 4x4
// matrix instead of translation, rotation and scale are reported with
// ErrMatrixTransform; matrix decomposition is not supported.
package gltfnode

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"

	"github.com/cwbudde/algo-rtm/rtm/quat"
	"github.com/cwbudde/algo-rtm/rtm/vector4"
)

// ErrMatrixTransform is returned for nodes whose transform is a matrix.
var ErrMatrixTransform = errors.New("gltfnode: node uses a matrix transform")

// ErrCycle is returned when node children form a cycle.
var ErrCycle = errors.New("gltfnode: node hierarchy contains a cycle")

// ErrMultipleParents is returned when a node is listed as a child more than
// once. glTF node hierarchies are strict trees.
var ErrMultipleParents = errors.New("gltfnode: node has more than one parent")

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// HasMatrix reports whether n carries a non-identity matrix transform.
func HasMatrix(n *gltf.Node) bool {
	return n.Matrix != [16]float64{} && n.Matrix != identityMatrix
}

// Rotation64 returns the node rotation, or identity if none is set.
func Rotation64(n *gltf.Node) quat.Quat64 {
	return quat.Quat64(n.RotationOrDefault())
}

// Rotation32 is Rotation64 narrowed to float32.
func Rotation32(n *gltf.Node) quat.Quat32 {
	return Rotation64(n).To32()
}

// Translation64 returns the node translation with w = 0.
func Translation64(n *gltf.Node) vector4.Vec64 {
	t := n.TranslationOrDefault()
	return vector4.Set64(t[0], t[1], t[2], 0)
}

// Scale64 returns the node scale with w = 0. An unset scale is (1, 1, 1).
func Scale64(n *gltf.Node) vector4.Vec64 {
	s := n.ScaleOrDefault()
	return vector4.Set64(s[0], s[1], s[2], 0)
}

// SetRotation stores q as the node rotation.
func SetRotation(n *gltf.Node, q quat.Quat64) {
	n.Rotation = [4]float64(q)
}

// SetTranslation stores the x, y, z lanes of v as the node translation.
func SetTranslation(n *gltf.Node, v vector4.Vec64) {
	n.Translation = [3]float64{v[0], v[1], v[2]}
}

// SetScale stores the x, y, z lanes of v as the node scale.
func SetScale(n *gltf.Node, v vector4.Vec64) {
	n.Scale = [3]float64{v[0], v[1], v[2]}
}

// LocalRotations returns the rotation of every node in doc, indexed like
// doc.Nodes.
func LocalRotations(doc *gltf.Document) ([]quat.Quat64, error) {
	out := make([]quat.Quat64, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if HasMatrix(n) {
			return nil, nodeError(i, n, ErrMatrixTransform)
		}
		out[i] = Rotation64(n)
	}

	return out, nil
}

// WorldRotations returns the rotation of every node relative to the scene
// root: each local rotation composed with its parent's world rotation.
func WorldRotations(doc *gltf.Document) ([]quat.Quat64, error) {
	local, err := LocalRotations(doc)
	if err != nil {
		return nil, err
	}

	parent := make([]int, len(doc.Nodes))
	for i := range parent {
		parent[i] = -1
	}
	for i, n := range doc.Nodes {
		for _, c := range n.Children {
			if c < 0 || c >= len(doc.Nodes) {
				return nil, fmt.Errorf("gltfnode: node %d: child index %d out of range", i, c)
			}
			if parent[c] >= 0 {
				return nil, fmt.Errorf("%w: parents %d and %d", nodeError(c, doc.Nodes[c], ErrMultipleParents), parent[c], i)
			}
			parent[c] = i
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(doc.Nodes))
	world := make([]quat.Quat64, len(doc.Nodes))

	var resolve func(i int) error
	resolve = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return nodeError(i, doc.Nodes[i], ErrCycle)
		}
		state[i] = visiting

		world[i] = local[i]
		if p := parent[i]; p >= 0 {
			if err := resolve(p); err != nil {
				return err
			}
			world[i] = local[i].Mul(world[p])
		}

		state[i] = done
		return nil
	}

	for i := range doc.Nodes {
		if err := resolve(i); err != nil {
			return nil, err
		}
	}

	return world, nil
}

func nodeError(i int, n *gltf.Node, err error) error {
	if n.Name != "" {
		return fmt.Errorf("%w: node %d (%s)", err, i, n.Name)
	}
	return fmt.Errorf("%w: node %d", err, i)
}
