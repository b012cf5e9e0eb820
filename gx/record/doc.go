// Package record provides a gx.Device that captures commands instead of
// driving hardware.
//
// Every Device call becomes a typed command value (SetZModeCommand,
// BeginCommand, IndexCommand, ...). Memory handed to the device (attribute
// arrays, texture images) is copied into a ResourcePool and referenced by
// handle, because callers may reuse it after a draw.
//
// # Basic Usage
//
//	rec := record.NewRecorder()
//	ctx, err := gxgl.NewContext(rec, record.NewDisplay(gx.NTSC480i))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// ... GL calls ...
//	r := rec.FinishRecording()
//
//	for _, d := range r.Draws() {
//	    fmt.Println(d.Prim, len(d.Vertices))
//	}
//	r.Dump(os.Stdout)
//
// A Recording can be replayed onto any other device:
//
//	r.Playback(gx.MustDevice("discard"))
//
// # Registration
//
// Importing the package registers two devices with gx:
//
//   - "record": a new *Recorder
//   - "discard": a device that drops every command
package record
