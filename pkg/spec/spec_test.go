package spec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/uispec/pkg/component"
	"github.com/go-drift/uispec/pkg/components"
	"github.com/go-drift/uispec/pkg/dom"
	"github.com/go-drift/uispec/pkg/errors"
	"github.com/go-drift/uispec/pkg/layout"
)

var categoryRecorder = component.NewCategory("Recorder", component.CategoryComponent)

// recorder records what it was declared with.
type recorder struct {
	component.Base
	tags  []string
	value string
}

func (*recorder) Category() *component.Category { return categoryRecorder }

func (p *recorder) ParseProperties(parser component.Parser, el *etree.Element, children map[string]*etree.Element) error {
	if err := p.Base.ParseProperties(parser, el, children); err != nil {
		return err
	}
	for _, child := range dom.Children(el) {
		p.tags = append(p.tags, child.FullTag())
	}
	if value, ok := children["value"]; ok {
		p.value = dom.TextContent(value)
	}
	return nil
}

func testRegistry() *component.Registry {
	r := components.NewRegistry()
	r.Register("recorder", component.Simple(func() component.Component { return &recorder{} }))
	return r
}

func load(t *testing.T, doc string, opts ...Option) *Spec {
	t.Helper()
	s, err := Load(strings.NewReader(doc), append([]Option{WithRegistry(testRegistry())}, opts...)...)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func wantParsingError(t *testing.T, err error, substr string) {
	t.Helper()
	var parsing *errors.ParsingError
	if !errors.As(err, &parsing) {
		t.Fatalf("error = %v, want ParsingError", err)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("error %q should contain %q", err.Error(), substr)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"wrong root", `<ui><components><box/></components></ui>`, "root element must be 'owo-ui'"},
		{"missing components", `<owo-ui><templates/></owo-ui>`, "missing 'components' element"},
		{"empty components", `<owo-ui><components> </components></owo-ui>`, "a single child must be declared"},
		{"two roots", `<owo-ui><components><box/><box/></components></owo-ui>`, "a single child must be declared"},
		{"malformed", `<owo-ui><components>`, "could not decode UI document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc), WithRegistry(testRegistry()))
			wantParsingError(t, err, tt.want)
		})
	}
}

func TestTemplateStore(t *testing.T) {
	s := load(t, `<owo-ui>
		<components><box/></components>
		<templates>
			<b-card><box/></b-card>
			<a-row><box/></a-row>
		</templates>
	</owo-ui>`)
	if diff := cmp.Diff([]string{"a-row", "b-card"}, s.Templates().Names()); diff != "" {
		t.Errorf("Names (-want +got):\n%s", diff)
	}
	if s.Templates().Len() != 2 {
		t.Errorf("Len = %d", s.Templates().Len())
	}
}

func TestDuplicateTemplates(t *testing.T) {
	doc := `<owo-ui>
		<components><box/></components>
		<templates>
			<item><recorder><value>first</value></recorder></item>
			<item><recorder><value>second</value></recorder></item>
		</templates>
	</owo-ui>`

	s := load(t, doc)
	c, err := s.ExpandTemplateParams(component.CategoryComponent, "item", nil)
	if err != nil {
		t.Fatalf("ExpandTemplateParams: %v", err)
	}
	if got := c.(*recorder).value; got != "second" {
		t.Errorf("value = %q, want the last declaration", got)
	}

	_, err = Load(strings.NewReader(doc), WithRegistry(testRegistry()), WithDuplicateTemplates(DuplicateReject))
	wantParsingError(t, err, "duplicate template 'item'")
}

func TestExpandWithoutTemplates(t *testing.T) {
	s := load(t, `<owo-ui><components><box/></components></owo-ui>`)
	_, err := s.ExpandTemplateParams(component.CategoryComponent, "anything", map[string]string{})
	wantParsingError(t, err, "unknown template 'anything'")
}

const substitutionDoc = `<owo-ui>
	<components><box/></components>
	<templates>
		<value-recorder>
			<recorder><value>{{x}}</value></recorder>
		</value-recorder>
	</templates>
</owo-ui>`

func TestSubstitution(t *testing.T) {
	s := load(t, substitutionDoc)

	c, err := s.ExpandTemplateParams(component.CategoryComponent, "value-recorder", map[string]string{"x": "5"})
	if err != nil {
		t.Fatalf("ExpandTemplateParams: %v", err)
	}
	if got := c.(*recorder).value; got != "5" {
		t.Errorf("value = %q, want %q", got, "5")
	}

	c, err = s.ExpandTemplateParams(component.CategoryComponent, "value-recorder", map[string]string{"y": "5"})
	if err != nil {
		t.Fatalf("ExpandTemplateParams: %v", err)
	}
	if got := c.(*recorder).value; got != "{{x}}" {
		t.Errorf("value = %q, want the placeholder preserved", got)
	}
}

func TestSubstitutionDoesNotMutateTemplate(t *testing.T) {
	s := load(t, substitutionDoc)
	for _, v := range []string{"one", "two"} {
		c, err := s.ExpandTemplateParams(component.CategoryComponent, "value-recorder", map[string]string{"x": v})
		if err != nil {
			t.Fatal(err)
		}
		if got := c.(*recorder).value; got != v {
			t.Errorf("value = %q, want %q", got, v)
		}
	}
	stored, _ := s.Templates().Lookup("value-recorder")
	if got := strings.TrimSpace(dom.TextContent(stored)); got != "{{x}}" {
		t.Errorf("stored template text = %q, want it untouched", got)
	}
}

func TestSubstitutionOnlyWholeText(t *testing.T) {
	s := load(t, `<owo-ui>
		<components><box/></components>
		<templates>
			<t><recorder><value>Hello {{x}}</value></recorder></t>
			<spaced><recorder><value>  {{ x }}  </value></recorder></spaced>
		</templates>
	</owo-ui>`)
	params := map[string]string{"x": "world"}

	c, err := s.ExpandTemplateParams(component.CategoryComponent, "t", params)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.(*recorder).value; got != "Hello {{x}}" {
		t.Errorf("value = %q, substring placeholders must not be replaced", got)
	}

	c, err = s.ExpandTemplateParams(component.CategoryComponent, "spaced", params)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.(*recorder).value; got != "world" {
		t.Errorf("value = %q, want %q", got, "world")
	}
}

const slotDoc = `<owo-ui>
	<components>
		<template name="slotted">
			<child id="content">
				<recorder><A>caller</A></recorder>
			</child>
		</template>
	</components>
	<templates>
		<slotted>
			<flow-layout direction="vertical">
				<children>
					<template-child id="content">
						<A>fallback</A>
						<B>fallback</B>
					</template-child>
				</children>
			</flow-layout>
		</slotted>
	</templates>
</owo-ui>`

func TestSlotFilling(t *testing.T) {
	s := load(t, slotDoc)
	root, err := s.ParseComponent(component.CategoryComponent, s.Root())
	if err != nil {
		t.Fatalf("ParseComponent: %v", err)
	}
	flow := root.(*components.FlowLayout)
	if len(flow.Children()) != 1 {
		t.Fatalf("got %d children, want 1", len(flow.Children()))
	}
	p := flow.Children()[0].(*recorder)
	if diff := cmp.Diff([]string{"A", "B"}, p.tags); diff != "" {
		t.Errorf("fragment children (-want +got):\n%s", diff)
	}

	// The caller's fragment must be left untouched for later expansions.
	fragment := s.Root().FindElement("child/recorder")
	if got := len(fragment.ChildElements()); got != 1 {
		t.Errorf("caller fragment has %d children after expansion, want 1", got)
	}
}

func TestSlotFillingNested(t *testing.T) {
	s := load(t, `<owo-ui>
		<components>
			<template name="outer">
				<child id="body"><recorder id="deep"/></child>
			</template>
		</components>
		<templates>
			<outer>
				<stack-layout>
					<children>
						<flow-layout direction="horizontal">
							<children><template-child id="body"/></children>
						</flow-layout>
					</children>
				</stack-layout>
			</outer>
		</templates>
	</owo-ui>`)
	root, err := s.ParseComponent(component.CategoryParent, s.Root())
	if err != nil {
		t.Fatalf("ParseComponent: %v", err)
	}
	if component.ChildByID(root, "deep") == nil {
		t.Error("slot nested below other elements was not filled")
	}
}

func TestSlotReferringToItself(t *testing.T) {
	s := load(t, `<owo-ui>
		<components>
			<template name="wrap">
				<child id="c">
					<stack-layout><children><template-child id="c"/></children></stack-layout>
				</child>
			</template>
		</components>
		<templates>
			<wrap>
				<flow-layout direction="vertical">
					<children><template-child id="c"/></children>
				</flow-layout>
			</wrap>
		</templates>
	</owo-ui>`)

	session := s.NewSession()
	_, err := session.ParseComponent(component.CategoryComponent, s.Root())
	wantParsingError(t, err, "template-child 'c' of template 'wrap' refers to itself")
	if session.Depth() != 0 {
		t.Errorf("Depth = %d after failure, want 0", session.Depth())
	}
}

func TestSlotsReferringToEachOther(t *testing.T) {
	s := load(t, `<owo-ui>
		<components>
			<template name="wrap">
				<child id="a">
					<stack-layout><children><template-child id="b"/></children></stack-layout>
				</child>
				<child id="b">
					<stack-layout><children><template-child id="a"/></children></stack-layout>
				</child>
			</template>
		</components>
		<templates>
			<wrap>
				<flow-layout direction="vertical">
					<children><template-child id="a"/></children>
				</flow-layout>
			</wrap>
		</templates>
	</owo-ui>`)

	_, err := s.ParseComponent(component.CategoryComponent, s.Root())
	wantParsingError(t, err, "template-child 'a' of template 'wrap' refers to itself")
}

func TestSlotFragmentFillsOtherSlot(t *testing.T) {
	s := load(t, `<owo-ui>
		<components>
			<template name="wrap">
				<child id="a">
					<stack-layout id="outer"><children><template-child id="b"/></children></stack-layout>
				</child>
				<child id="b"><label id="leaf"/></child>
			</template>
		</components>
		<templates>
			<wrap>
				<flow-layout direction="vertical">
					<children>
						<template-child id="a"/>
						<template-child id="b"/>
					</children>
				</flow-layout>
			</wrap>
		</templates>
	</owo-ui>`)

	root, err := s.ParseComponent(component.CategoryComponent, s.Root())
	if err != nil {
		t.Fatalf("ParseComponent: %v", err)
	}
	outer := component.ChildByID(root, "outer").(*components.StackLayout)
	if len(outer.Children()) != 1 || outer.Children()[0].ID() != "leaf" {
		t.Errorf("outer children = %v", outer.Children())
	}
	if got := len(root.(*components.FlowLayout).Children()); got != 2 {
		t.Errorf("root has %d children, want 2", got)
	}
}

func TestNamespacedTags(t *testing.T) {
	s := load(t, `<owo-ui>
		<components><box/></components>
		<templates>
			<a:card><box/></a:card>
			<b:card><label/></b:card>
		</templates>
	</owo-ui>`, WithDuplicateTemplates(DuplicateReject))
	if diff := cmp.Diff([]string{"a:card", "b:card"}, s.Templates().Names()); diff != "" {
		t.Errorf("Names (-want +got):\n%s", diff)
	}
	if _, err := s.ExpandTemplateParams(component.CategoryComponent, "card", nil); err == nil {
		t.Error("unprefixed name should not resolve a prefixed template")
	}

	_, err := s.ParseComponent(component.CategoryComponent, etree.NewElement("x:template"))
	wantParsingError(t, err, "unknown component tag 'x:template'")
}

func TestMissingSlot(t *testing.T) {
	doc := `<owo-ui>
		<components><template name="needs-slot"/></components>
		<templates>
			<needs-slot>
				<flow-layout direction="vertical">
					<children><template-child id="body"/></children>
				</flow-layout>
			</needs-slot>
		</templates>
	</owo-ui>`

	s := load(t, doc)
	_, err := s.ParseComponent(component.CategoryComponent, s.Root())
	wantParsingError(t, err, "template 'needs-slot' requires child 'body'")

	s = load(t, doc, WithMissingSlots(MissingSlotKeep))
	_, err = s.ParseComponent(component.CategoryComponent, s.Root())
	wantParsingError(t, err, "unknown component tag 'template-child'")
}

func TestCascadingParameters(t *testing.T) {
	s := load(t, `<owo-ui>
		<components>
			<template name="X"><p>outer</p></template>
		</components>
		<templates>
			<X><template name="Y"><q>inner</q></template></X>
			<Y>
				<flow-layout direction="vertical">
					<children>
						<recorder id="p"><value>{{p}}</value></recorder>
						<recorder id="q"><value>{{q}}</value></recorder>
					</children>
				</flow-layout>
			</Y>
		</templates>
	</owo-ui>`)

	root, err := s.ParseComponent(component.CategoryComponent, s.Root())
	if err != nil {
		t.Fatalf("ParseComponent: %v", err)
	}
	if got := component.ChildByID(root, "p").(*recorder).value; got != "outer" {
		t.Errorf("{{p}} = %q, want value from enclosing template", got)
	}
	if got := component.ChildByID(root, "q").(*recorder).value; got != "inner" {
		t.Errorf("{{q}} = %q, want %q", got, "inner")
	}
}

func TestInnerParameterWins(t *testing.T) {
	s := load(t, `<owo-ui>
		<components>
			<template name="X"><p>outer</p></template>
		</components>
		<templates>
			<X><template name="Y"><p>inner</p></template></X>
			<Y><recorder><value>{{p}}</value></recorder></Y>
		</templates>
	</owo-ui>`)
	c, err := s.ParseComponent(component.CategoryComponent, s.Root())
	if err != nil {
		t.Fatal(err)
	}
	if got := c.(*recorder).value; got != "inner" {
		t.Errorf("{{p}} = %q, want the innermost value", got)
	}
}

func TestCapabilityMismatch(t *testing.T) {
	s := load(t, `<owo-ui>
		<components><label id="title"><text>hi</text></label></components>
		<templates><leaf><label/></leaf></templates>
	</owo-ui>`)

	_, err := s.ParseComponent(component.CategoryParent, s.Root())
	var incompatible *errors.IncompatibleError
	if !errors.As(err, &incompatible) {
		t.Fatalf("error = %v, want IncompatibleError", err)
	}
	want := "expected component 'label' with id 'title' to be a ParentComponent, but it is a Label"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}

	_, err = s.ExpandTemplateParams(components.CategoryFlowLayout, "leaf", nil)
	if !errors.As(err, &incompatible) {
		t.Fatalf("error = %v, want IncompatibleError", err)
	}
	if !incompatible.Template || incompatible.Expected != "FlowLayout" || incompatible.Actual != "Label" {
		t.Errorf("incompatible = %+v", incompatible)
	}
}

func TestTemplateInvocationErrors(t *testing.T) {
	tests := []struct {
		name string
		root string
		want string
	}{
		{"missing name", `<template/>`, "missing 'name' attribute"},
		{"blank name", `<template name="  "/>`, "missing 'name' attribute"},
		{"empty child", `<template name="t"><child id="c"/></template>`, "template child 'c' of 't' must declare an element"},
		{"unknown tag", `<widget/>`, "unknown component tag 'widget'"},
		{"two roots", `<template name="two"/>`, "must declare a single root element"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := load(t, fmt.Sprintf(`<owo-ui>
				<components>%s</components>
				<templates>
					<t><box/></t>
					<two><box/><box/></two>
				</templates>
			</owo-ui>`, tt.root))
			_, err := s.ParseComponent(component.CategoryComponent, s.Root())
			wantParsingError(t, err, tt.want)
		})
	}
}

func TestSessionStackEmptyAfterFailure(t *testing.T) {
	s := load(t, `<owo-ui>
		<components><template name="outer"/></components>
		<templates>
			<outer><template name="inner"/></outer>
			<inner><missing/></inner>
		</templates>
	</owo-ui>`)
	session := s.NewSession()
	if _, err := session.ParseComponent(component.CategoryComponent, s.Root()); err == nil {
		t.Fatal("expected failure")
	}
	if session.Depth() != 0 {
		t.Errorf("Depth = %d after failure, want 0", session.Depth())
	}

	// The session stays usable.
	c, err := session.ParseComponent(component.CategoryComponent, etree.NewElement("box"))
	if err != nil || c == nil {
		t.Errorf("reused session: %v", err)
	}
}

var categoryTemplated = component.NewCategory("Templated", component.CategoryComponent)

// templated expands the template named by its attribute from inside its
// property parser.
type templated struct {
	component.Base
	inner component.Component
	depth int
}

func (*templated) Category() *component.Category { return categoryTemplated }

func (tc *templated) ParseProperties(parser component.Parser, el *etree.Element, children map[string]*etree.Element) error {
	name, _ := dom.Attr(el, "use")
	tc.depth = parser.(*Session).Depth()
	c, err := parser.ExpandTemplate(component.CategoryComponent, name, func(string) (string, bool) { return "", false }, nil)
	tc.inner = c
	return err
}

func TestPropertyParserSharesSession(t *testing.T) {
	r := testRegistry()
	r.Register("templated", component.Simple(func() component.Component { return &templated{} }))
	s, err := Load(strings.NewReader(`<owo-ui>
		<components><template name="outer"><v>from-outer</v></template></components>
		<templates>
			<outer><templated use="inner"/></outer>
			<inner><recorder><value>{{v}}</value></recorder></inner>
		</templates>
	</owo-ui>`), WithRegistry(r))
	if err != nil {
		t.Fatal(err)
	}

	c, err := s.ParseComponent(component.CategoryComponent, s.Root())
	if err != nil {
		t.Fatalf("ParseComponent: %v", err)
	}
	tc := c.(*templated)
	if tc.depth != 1 {
		t.Errorf("depth seen by property parser = %d, want 1", tc.depth)
	}
	if got := tc.inner.(*recorder).value; got != "from-outer" {
		t.Errorf("{{v}} = %q, want value cascaded through the property parser", got)
	}
}

func TestCreateHierarchy(t *testing.T) {
	s := load(t, `<owo-ui><components><box/></components></owo-ui>`)
	adapter, err := s.CreateHierarchy(component.CategoryComponent, HostSize{Width: 320, Height: 200})
	if err != nil {
		t.Fatalf("CreateHierarchy: %v", err)
	}
	if _, ok := adapter.Root.(*components.Box); !ok {
		t.Fatalf("root = %T, want *components.Box", adapter.Root)
	}
	h, v := adapter.Root.Sizing()
	if h != layout.Fill(100) || v != layout.Fill(100) {
		t.Errorf("root sizing = %v, %v, want fill(100) on both axes", h, v)
	}
	if got := adapter.RootSize(); got != (layout.Size{Width: 320, Height: 200}) {
		t.Errorf("RootSize = %+v", got)
	}

	if _, err := s.CreateHierarchy(component.CategoryParent, HostSize{}); err == nil {
		t.Error("expected incompatible root error")
	}
}

func TestAdapterChildByID(t *testing.T) {
	s := load(t, `<owo-ui><components>
		<flow-layout id="root" direction="vertical">
			<children><label id="title"/></children>
		</flow-layout>
	</components></owo-ui>`)
	adapter, err := s.CreateHierarchy(component.CategoryParent, HostSize{})
	if err != nil {
		t.Fatal(err)
	}
	if adapter.ChildByID("root") != adapter.Root {
		t.Error("ChildByID(root) should return the root")
	}
	if _, ok := adapter.ChildByID("title").(*components.Label); !ok {
		t.Error("ChildByID(title) should find the label")
	}
}

func TestConcurrentSessions(t *testing.T) {
	s := load(t, substitutionDoc)
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			want := fmt.Sprint(i)
			c, err := s.ExpandTemplateParams(component.CategoryComponent, "value-recorder", map[string]string{"x": want})
			if err != nil {
				errs <- err
				return
			}
			if got := c.(*recorder).value; got != want {
				errs <- fmt.Errorf("value = %q, want %q", got, want)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

type captureHandler struct {
	errs   []*errors.SpecError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.SpecError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func TestPanickingFactory(t *testing.T) {
	handler := &captureHandler{}
	old := errors.DefaultHandler
	errors.SetHandler(handler)
	defer errors.SetHandler(old)

	r := testRegistry()
	r.Register("broken", func(*etree.Element) (component.Component, error) {
		panic("factory bug")
	})
	s, err := Load(strings.NewReader(`<owo-ui>
		<components>
			<flow-layout direction="vertical">
				<children><template name="row"/></children>
			</flow-layout>
		</components>
		<templates><row><broken/></row></templates>
	</owo-ui>`), WithRegistry(r))
	if err != nil {
		t.Fatal(err)
	}

	session := s.NewSession()
	_, err = session.ParseComponent(component.CategoryComponent, s.Root())
	var panicErr *errors.PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("error = %v, want PanicError", err)
	}
	if panicErr.Value != "factory bug" || panicErr.Op != "spec.ParseComponent" {
		t.Errorf("panic = %+v", panicErr)
	}
	if errors.KindOf(err) != errors.KindPanic {
		t.Errorf("KindOf = %v, want panic", errors.KindOf(err))
	}
	if len(handler.panics) != 1 {
		t.Errorf("reported %d panics, want 1", len(handler.panics))
	}
	if session.Depth() != 0 {
		t.Errorf("Depth = %d after panic, want 0", session.Depth())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.xml")
	bad := filepath.Join(dir, "bad.xml")
	if err := os.WriteFile(good, []byte(`<owo-ui><components><box/></components></owo-ui>`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(`<owo-ui/>`), 0o644); err != nil {
		t.Fatal(err)
	}

	handler := &captureHandler{}
	old := errors.DefaultHandler
	errors.SetHandler(handler)
	defer errors.SetHandler(old)

	if s := LoadFile(good, WithRegistry(testRegistry())); s == nil {
		t.Error("LoadFile(good) returned nil")
	}
	if s := LoadFile(bad); s != nil {
		t.Error("LoadFile(bad) should return nil")
	}
	if s := LoadFile(filepath.Join(dir, "missing.xml")); s != nil {
		t.Error("LoadFile(missing) should return nil")
	}

	if len(handler.errs) != 2 {
		t.Fatalf("reported %d errors, want 2", len(handler.errs))
	}
	if handler.errs[0].Kind != errors.KindParsing || handler.errs[0].Path != bad {
		t.Errorf("first report = %+v", handler.errs[0])
	}
	if !strings.Contains(handler.errs[0].StackTrace, "spec.LoadFile") {
		t.Errorf("report stack should name spec.LoadFile:\n%s", handler.errs[0].StackTrace)
	}
	if handler.errs[1].Kind != errors.KindLoad {
		t.Errorf("second report kind = %v, want load", handler.errs[1].Kind)
	}
}

func TestPolicyParsing(t *testing.T) {
	if p, err := ParseDuplicatePolicy("Reject"); err != nil || p != DuplicateReject {
		t.Errorf("ParseDuplicatePolicy(Reject) = %v, %v", p, err)
	}
	if p, err := ParseMissingSlotPolicy(""); err != nil || p != MissingSlotError {
		t.Errorf("ParseMissingSlotPolicy(\"\") = %v, %v", p, err)
	}
	if _, err := ParseMissingSlotPolicy("ignore"); err == nil {
		t.Error("expected error for unknown policy")
	}
	if DuplicateOverwrite.String() != "overwrite" || MissingSlotKeep.String() != "keep" {
		t.Error("policy String mismatch")
	}
}
