package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_Accessors(t *testing.T) {
	p := Params{ParamShowCreateModal: true, ParamID: "t-1", "count": 3}

	assert.True(t, p.Bool(ParamShowCreateModal))
	assert.False(t, p.Bool("missing"))
	assert.False(t, p.Bool("count"))
	assert.Equal(t, "t-1", p.String(ParamID))
	assert.Equal(t, "", p.String("count"))
}

func TestParams_CloneIsIndependent(t *testing.T) {
	p := Params{ParamID: "a"}
	c := p.Clone()
	c[ParamID] = "b"
	assert.Equal(t, "a", p.String(ParamID))

	assert.NotNil(t, Params(nil).Clone())
}

func TestPageSets(t *testing.T) {
	for _, p := range AuthenticatedPages() {
		assert.True(t, IsAuthenticatedPage(p))
		assert.False(t, IsAuthPage(p))
	}
	assert.True(t, IsAuthPage(PageLogin))
	assert.True(t, IsAuthPage(PageSignup))
	assert.False(t, IsAuthenticatedPage(PageLogin))
	assert.Equal(t, State{Page: PageDashboard, Params: Params{}}, Default())
}
