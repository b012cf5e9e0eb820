// Package gxgl implements the fixed-function subset of OpenGL 1.x on top of
// the GameCube/Wii graphics processor command interface.
//
// # Overview
//
// Code written against the GL state machine (capability flags, matrix
// stacks, client vertex arrays, texture objects, fixed-function lighting)
// runs against a gx.Device, which exposes vertex descriptors, TEV stages
// and indexed FIFO submission instead. A Context keeps the GL state and
// translates every call into hardware configuration commands, converting
// vertex and texture data to the layouts the hardware reads.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gxgl"
//	    "github.com/gogpu/gxgl/gx"
//	    "github.com/gogpu/gxgl/gx/record"
//	)
//
//	dev := record.NewRecorder()
//	ctx, err := gxgl.NewContext(dev, record.NewDisplay(gx.NTSC480i))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx.MatrixMode(gxgl.Projection)
//	ctx.Ortho(-1, 1, -1, 1, -1, 1)
//	ctx.EnableClientState(gxgl.VertexArray)
//	ctx.VertexPointer(2, gxgl.Float, 0, gxgl.Client(gxgl.Float32Bytes(
//	    -1, -1, 1, -1, 0, 1)))
//	ctx.DrawArrays(gxgl.Triangles, 0, 3)
//	ctx.Present()
//
// # Errors
//
// Every call returns an error wrapping one of ErrInvalidEnum,
// ErrInvalidValue, ErrInvalidOperation, ErrStackOverflow,
// ErrStackUnderflow or ErrOutOfBounds. A rejected call changes no state
// and issues no commands. WithErrorHandler installs a callback run once
// per rejected call; FatalErrorHandler ends the process like a strict
// driver. WithStrictness(StrictnessLenient) turns rejected calls into
// logged no-ops.
//
// # Data Layout
//
// The hardware is big-endian. Vertex data in arrays and buffers is read as
// stored, so float data should be encoded with Float32Bytes or uploaded
// with BufferDataFloat32. 16-bit index data is read in the order set by
// WithByteOrder, big-endian by default.
//
// # Coordinate System
//
// Matrices passed in are column-major as in GL. Projections built by Ortho
// and Frustum map depth to [-w, 0], the range the hardware clipper expects,
// rather than GL's [-w, w].
package gxgl
