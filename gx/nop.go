package gx

// NopDevice is a Device that ignores every command. Embed it to implement
// only the methods a test or tool cares about.
type NopDevice struct{}

var _ Device = NopDevice{}

func (NopDevice) SetViewport(_, _, _, _, _, _ float32)                  {}
func (NopDevice) SetScissor(_, _, _, _ uint32)                          {}
func (NopDevice) SetDispCopySrc(_, _, _, _ uint16)                      {}
func (NopDevice) SetDispCopyDst(_, _ uint16)                            {}
func (NopDevice) SetDispCopyYScale(_ float32)                           {}
func (NopDevice) SetFieldMode(_, _ bool)                                {}
func (NopDevice) SetDispCopyGamma(_ Gamma)                              {}
func (NopDevice) SetCopyClear(_ Color, _ uint32)                        {}
func (NopDevice) CopyDisp(_ int, _ bool)                                {}
func (NopDevice) DrawDone()                                             {}
func (NopDevice) SetZMode(_ bool, _ CompareFunc, _ bool)                {}
func (NopDevice) SetCullMode(_ CullMode)                                {}
func (NopDevice) SetBlendMode(_ BlendMode, _, _ BlendFactor, _ LogicOp) {}
func (NopDevice) SetAlphaCompare(_ CompareFunc, _ uint8, _ AlphaOp, _ CompareFunc, _ uint8) {
}
func (NopDevice) SetColorUpdate(_ bool)                                            {}
func (NopDevice) SetAlphaUpdate(_ bool)                                            {}
func (NopDevice) SetPointSize(_ uint8, _ PointOffset)                              {}
func (NopDevice) LoadPosMtxImm(_ Mtx, _ PosMtx)                                    {}
func (NopDevice) LoadNrmMtxImm(_ Mtx, _ PosMtx)                                    {}
func (NopDevice) LoadProjectionMtx(_ Mtx44, _ ProjectionType)                      {}
func (NopDevice) LoadTexMtxImm(_ Mtx, _ TexMtx, _ TexMtxType)                      {}
func (NopDevice) ClearVtxDesc()                                                    {}
func (NopDevice) SetVtxDesc(_ Attr, _ AttrType)                                    {}
func (NopDevice) SetVtxAttrFmt(_ VtxFmt, _ Attr, _ CompCount, _ CompType, _ uint8) {}
func (NopDevice) SetArray(_ Attr, _ []byte, _ uint8)                               {}
func (NopDevice) InvVtxCache()                                                     {}
func (NopDevice) Begin(_ Primitive, _ VtxFmt, _ uint16)                            {}
func (NopDevice) Position1x16(_ uint16)                                            {}
func (NopDevice) Normal1x16(_ uint16)                                              {}
func (NopDevice) Color1x16(_ uint16)                                               {}
func (NopDevice) TexCoord1x16(_ uint16)                                            {}
func (NopDevice) End()                                                             {}
func (NopDevice) SetNumTevStages(_ uint8)                                          {}
func (NopDevice) SetTevOrder(_ TevStage, _ TexCoordID, _ TexMapID, _ ChannelID)    {}
func (NopDevice) SetTevColorIn(_ TevStage, _, _, _, _ TevColorArg)                 {}
func (NopDevice) SetTevAlphaIn(_ TevStage, _, _, _, _ TevAlphaArg)                 {}
func (NopDevice) SetTevColorOp(_ TevStage, _ TevOp, _ TevBias, _ TevScale, _ bool, _ TevReg) {
}
func (NopDevice) SetTevAlphaOp(_ TevStage, _ TevOp, _ TevBias, _ TevScale, _ bool, _ TevReg) {
}
func (NopDevice) SetTevColor(_ TevReg, _ Color)                                    {}
func (NopDevice) SetNumTexGens(_ uint8)                                            {}
func (NopDevice) SetTexCoordGen(_ TexCoordID, _ TexGenType, _ TexGenSrc, _ TexMtx) {}
func (NopDevice) SetNumChans(_ uint8)                                              {}
func (NopDevice) SetChanCtrl(_ ChannelID, _ bool, _, _ ColorSrc, _ LightMask, _ DiffuseFn, _ AttnFn) {
}
func (NopDevice) SetChanAmbColor(_ ChannelID, _ Color)  {}
func (NopDevice) SetChanMatColor(_ ChannelID, _ Color)  {}
func (NopDevice) LoadLightObj(_ *LightObj, _ LightMask) {}
func (NopDevice) LoadTexObj(_ *TexObj, _ TexMapID)      {}
func (NopDevice) InvalidateTexAll()                     {}
func (NopDevice) FlushRange(_ []byte)                   {}
