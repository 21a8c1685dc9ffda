// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package banner

import (
	"fmt"
	"html"

	"github.com/jasmine/vbanner/pkg/version"
)

type messageArgs struct {
	name     string
	version  string
	latest   string
	prefix   string
	pageName string
}

func (m messageArgs) escaped() messageArgs {
	return messageArgs{
		name:     html.EscapeString(m.name),
		version:  html.EscapeString(m.version),
		latest:   html.EscapeString(m.latest),
		prefix:   html.EscapeString(m.prefix),
		pageName: html.EscapeString(m.pageName),
	}
}

func (m messageArgs) link(v string) string {
	return m.prefix + v + "/" + m.pageName
}

func prereleaseMessage(m messageArgs) string {
	return fmt.Sprintf(`This page describes a pre-release version of %[1]s
(%[2]s). There may be additional changes,
including breaking changes, before the final
%[3]s release.<br>
The current stable version of %[1]s is
<a href="%[4]s">%[5]s</a>.
`, m.name, m.version, version.FinalRelease(m.version), m.link(m.latest), m.latest)
}

func olderMessage(m messageArgs, edgeLabel string) string {
	return fmt.Sprintf(`This page is for an older version of %[1]s
(%[2]s).<br/>
The current stable version of %[1]s is:
<a href="%[3]s">%[4]s</a>.
You can also look at the docs for the next release: <a href="%[5]s">%[6]s</a>
`, m.name, m.version, m.link(m.latest), m.latest, m.link(version.Edge), edgeLabel)
}

func wrap(msg string) string {
	return `<div class="main-content">
    <div class="warning">` + msg + `</div>
</div>
`
}
