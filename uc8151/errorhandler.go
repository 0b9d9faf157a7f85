package uc8151

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// maxChunk bounds a single SPI transaction.
const maxChunk = 4096

type errorHandler struct {
	d   *Dev
	err error
}

func (eh *errorHandler) rstOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.rst.Out(l)
}

func (eh *errorHandler) cTx(w []byte) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.c.Tx(w, nil)
}

func (eh *errorHandler) dcOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.dc.Out(l)
}

func (eh *errorHandler) csOut(l gpio.Level) {
	if eh.err != nil || eh.d.cs == nil {
		return
	}
	eh.err = eh.d.cs.Out(l)
}

// waitUntilIdle polls the busy line, which the controller holds low while
// it works.
func (eh *errorHandler) waitUntilIdle() {
	if eh.err != nil {
		return
	}
	deadline := time.Now().Add(eh.d.opts.BusyTimeout)
	for eh.d.busy.Read() == gpio.Low {
		if eh.d.opts.BusyTimeout > 0 && time.Now().After(deadline) {
			eh.err = ErrBusyTimeout
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func (eh *errorHandler) sendCommand(cmd byte) {
	if eh.err != nil {
		return
	}

	eh.dcOut(gpio.Low)
	eh.csOut(gpio.Low)
	eh.cTx([]byte{cmd})
	eh.csOut(gpio.High)
}

func (eh *errorHandler) sendData(data []byte) {
	if eh.err != nil {
		return
	}

	eh.dcOut(gpio.High)
	eh.csOut(gpio.Low)
	for len(data) > 0 {
		n := len(data)
		if n > maxChunk {
			n = maxChunk
		}
		eh.cTx(data[:n])
		data = data[n:]
	}
	eh.csOut(gpio.High)
}

func (eh *errorHandler) reset() {
	eh.rstOut(gpio.Low)
	time.Sleep(10 * time.Millisecond)
	eh.rstOut(gpio.High)
	time.Sleep(10 * time.Millisecond)
	eh.waitUntilIdle()
}
