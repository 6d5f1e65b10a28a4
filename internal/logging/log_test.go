/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package logging

import (
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestGetLoggers(t *testing.T) {
	assert.NotNil(t, GetLog())
	assert.NotNil(t, GetPerftLog())
	assert.NotNil(t, GetTestLog())
	// repeated calls hand back the same underlying logger
	assert.Equal(t, GetLog(), GetLog())
}

// the configured level gates which records a backend sees.
func TestLogLevelGating(t *testing.T) {
	mem := logging.NewMemoryBackend(64)
	leveled := logging.AddModuleLevel(mem)
	leveled.SetLevel(logging.WARNING, "")

	log := GetLog()
	log.SetBackend(leveled)
	log.Infof("below the threshold")
	log.Debugf("also below")
	log.Warningf("at the threshold")
	log.Errorf("above the threshold")

	count := 0
	for node := mem.Head(); node != nil; node = node.Next() {
		count++
	}
	assert.Equal(t, 2, count, "only warning and error should be recorded")
}
