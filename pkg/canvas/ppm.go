package canvas

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxPPMLineLength is the longest line a plain PPM file may contain
const maxPPMLineLength = 70

func ceil255(v float64) float64 {
	return math.Ceil(v * 255)
}

// WritePPM writes the canvas as a plain (P3) PPM image. Channel values are
// scaled to [0, 255] and lines are wrapped before 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("P3\n")
	bw.WriteString(strconv.Itoa(c.width) + " " + strconv.Itoa(c.height) + "\n")
	bw.WriteString("255\n")

	var line strings.Builder
	flush := func() {
		if line.Len() > 0 {
			bw.WriteString(line.String())
			bw.WriteByte('\n')
			line.Reset()
		}
	}

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			for _, v := range [3]float64{p.R, p.G, p.B} {
				s := strconv.Itoa(toByte(v))
				if line.Len()+len(s)+1 > maxPPMLineLength {
					flush()
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(s)
			}
		}
		// Each row starts on a fresh line
		flush()
	}

	return bw.Flush()
}

// PPM returns the canvas as a plain PPM string
func (c *Canvas) PPM() string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = c.WritePPM(&sb)
	return sb.String()
}
