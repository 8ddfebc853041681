// This file is part of Padcast.
//
// Padcast is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padcast is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padcast.  If not, see <https://www.gnu.org/licenses/>.

package test

import "sync"

// Writer is an implementation of the io.Writer interface. It should be used
// to capture output and to compare with predefined strings.
//
// Writer is safe to use from more than one goroutine. Output from a transport
// goroutine can be captured in the same Writer as output from the test.
type Writer struct {
	crit   sync.Mutex
	buffer []byte

	// number of calls to Flush()
	Flushed int
}

// Write implements the io.Writer interface.
func (tw *Writer) Write(p []byte) (n int, err error) {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	tw.buffer = append(tw.buffer, p...)
	return len(p), nil
}

// Flush satisfies the flusher interface used by writers that want their
// output to be seen immediately. The buffer is not changed.
func (tw *Writer) Flush() error {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	tw.Flushed++
	return nil
}

// Clear empties the buffer.
func (tw *Writer) Clear() {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	tw.buffer = tw.buffer[:0]
	tw.Flushed = 0
}

// Compare buffered output with predefined/example string.
func (tw *Writer) Compare(s string) bool {
	return s == tw.String()
}

// String implements the fmt.Stringer interface.
func (tw *Writer) String() string {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return string(tw.buffer)
}
