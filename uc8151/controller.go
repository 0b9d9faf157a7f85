package uc8151

import "image"

type controller interface {
	sendCommand(byte)
	sendData([]byte)
	waitUntilIdle()
}

func psrSetting(opts *Opts, speed Speed) byte {
	v := res128x296 | formatBW | boosterOn | resetNone
	if speed == Default {
		v |= lutOTP
	} else {
		v |= lutREG
	}
	if !opts.UpsideDown {
		v |= scanUp | shiftRight
	}
	return v
}

func cdiSetting(opts *Opts) byte {
	if opts.Inverted {
		return 0b01_01_1100
	}
	return 0b01_00_1100
}

func initDisplay(ctrl controller, opts *Opts, speed Speed) {
	ctrl.sendCommand(panelSetting)
	ctrl.sendData([]byte{psrSetting(opts, speed)})

	ctrl.sendCommand(powerSetting)
	ctrl.sendData([]byte{
		vdsInternal | vdgInternal,
		vcomVD | vghl16V,
		0b101011,
		0b101011,
		0b101011,
	})

	ctrl.sendCommand(powerOn)
	ctrl.waitUntilIdle()

	ctrl.sendCommand(boosterSoftStart)
	ctrl.sendData([]byte{
		boosterStart10ms | boosterStrength3 | boosterOff6_58us,
		boosterStart10ms | boosterStrength3 | boosterOff6_58us,
		boosterStart10ms | boosterStrength3 | boosterOff6_58us,
	})

	ctrl.sendCommand(powerOffSequence)
	ctrl.sendData([]byte{frames1})

	ctrl.sendCommand(temperatureSensor)
	ctrl.sendData([]byte{0x00})

	ctrl.sendCommand(tconSetting)
	ctrl.sendData([]byte{0x22})

	ctrl.sendCommand(vcomDataInterval)
	ctrl.sendData([]byte{cdiSetting(opts)})

	ctrl.sendCommand(pllControl)
	ctrl.sendData([]byte{pll100Hz})

	ctrl.sendCommand(powerOff)
	ctrl.waitUntilIdle()
}

func updateFull(ctrl controller, frame []byte) {
	ctrl.sendCommand(powerOn)
	ctrl.sendCommand(partialOut)

	ctrl.sendCommand(dataStartTransmission2)
	ctrl.sendData(frame)
	ctrl.waitUntilIdle()

	ctrl.sendCommand(dataStop)
	ctrl.sendCommand(displayRefresh)
	ctrl.waitUntilIdle()

	ctrl.sendCommand(powerOff)
}

// partialWindow returns the PTL payload for r. The panel's gate axis runs
// along y and its source axis along x.
func partialWindow(r image.Rectangle) []byte {
	x0, x1 := r.Min.X, r.Max.X-1
	return []byte{
		byte(r.Min.Y),
		byte(r.Max.Y - 1),
		byte(x0 >> 8),
		byte(x0),
		byte(x1 >> 8),
		byte(x1),
		0x01,
	}
}

func updatePartial(ctrl controller, r image.Rectangle, columns []byte) {
	ctrl.sendCommand(powerOn)
	ctrl.sendCommand(partialIn)

	ctrl.sendCommand(partialWindowCmd)
	ctrl.sendData(partialWindow(r))

	ctrl.sendCommand(dataStartTransmission2)
	ctrl.sendData(columns)

	ctrl.sendCommand(dataStop)
	ctrl.sendCommand(displayRefresh)
	ctrl.waitUntilIdle()

	ctrl.sendCommand(powerOff)
}
