// This file is part of Clipdeck.
//
// Clipdeck is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Clipdeck is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Clipdeck.  If not, see <https://www.gnu.org/licenses/>.

package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/davidmay/clipdeck/storage/flatfile"
	"github.com/davidmay/clipdeck/test"
	"github.com/davidmay/clipdeck/web"
)

func TestFileEndpoints(t *testing.T) {
	st, err := flatfile.NewStore(t.TempDir())
	test.ExpectedSuccess(t, err)

	w, err := st.OpenAppend("/session.txt")
	test.ExpectedSuccess(t, err)
	_, err = io.WriteString(w, "insertClip line\n")
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, w.Close())

	srv := httptest.NewServer(web.NewServer(st).Handler())
	defer srv.Close()

	// listing
	resp, err := http.Get(srv.URL + "/api/files")
	test.ExpectedSuccess(t, err)
	b, err := io.ReadAll(resp.Body)
	test.ExpectedSuccess(t, err)
	resp.Body.Close()
	test.Equate(t, resp.StatusCode, http.StatusOK)
	test.ExpectedSuccess(t, strings.Contains(string(b), "/session.txt"))

	// contents by number
	resp, err = http.Get(srv.URL + "/api/files/1")
	test.ExpectedSuccess(t, err)
	b, err = io.ReadAll(resp.Body)
	test.ExpectedSuccess(t, err)
	resp.Body.Close()
	test.Equate(t, string(b), "insertClip line\n")

	// out of range
	resp, err = http.Get(srv.URL + "/api/files/2")
	test.ExpectedSuccess(t, err)
	resp.Body.Close()
	test.Equate(t, resp.StatusCode, http.StatusNotFound)

	// delete
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/files/1", nil)
	test.ExpectedSuccess(t, err)
	resp, err = http.DefaultClient.Do(req)
	test.ExpectedSuccess(t, err)
	resp.Body.Close()
	test.Equate(t, resp.StatusCode, http.StatusOK)

	names, err := st.List()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(names), 0)
}
