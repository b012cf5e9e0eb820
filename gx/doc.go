// Package gx models the command generator of the GameCube/Wii graphics
// processor.
//
// The package defines the vocabulary of the hardware (primitive types, vertex
// attribute formats, TEV stage arguments, texture objects, light objects,
// row-major matrices) and the two interfaces the rest of gxgl drives:
//
//   - Device: the command FIFO. Every method corresponds to one hardware
//     configuration or submission call and takes effect in call order.
//   - Display: the video interface (vertical sync and framebuffer flipping).
//
// Implementations are registered by name following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/gxgl/gx/record" // registers "record" and "discard"
//
//	dev, err := gx.NewDevice("record")
//
// Hardware matrices are row-major. Mtx is the 3×4 affine form used for
// position, normal and texture matrices; Mtx44 is the full projection form.
package gx
