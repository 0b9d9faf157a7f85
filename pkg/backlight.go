package pkg

import (
	"github.com/stianeikeland/go-rpio/v4"
)

const pwmCycle = 255

// LED is a GPIO driven LED. On the hardware PWM pins the level is a duty
// cycle, elsewhere any non-zero level turns it on.
type LED struct {
	pin rpio.Pin
	pwm bool
}

func isPWMPin(n int) bool {
	switch n {
	case 12, 13, 18, 19:
		return true
	}
	return false
}

// OpenLED maps the GPIO registers and configures BCM pin n.
func OpenLED(n int) (*LED, error) {
	if err := rpio.Open(); err != nil {
		return nil, err
	}
	l := &LED{pin: rpio.Pin(n), pwm: isPWMPin(n)}
	if l.pwm {
		l.pin.Pwm()
		l.pin.Freq(64000)
	} else {
		l.pin.Output()
	}
	return l, nil
}

func (l *LED) SetLevel(level uint8) error {
	if l.pwm {
		l.pin.DutyCycle(uint32(level), pwmCycle)
		return nil
	}
	if level > 0 {
		l.pin.High()
	} else {
		l.pin.Low()
	}
	return nil
}

func (l *LED) Close() error {
	l.pin.Low()
	return rpio.Close()
}
