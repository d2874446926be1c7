// Package spec parses declarative UI documents into component trees.
//
// A document declares a single component hierarchy and, optionally, a set
// of named templates:
//
//	<owo-ui>
//	    <components>
//	        <flow-layout direction="vertical">
//	            <children>
//	                <template name="titled-button">
//	                    <title>Save</title>
//	                    <child id="icon"><box><fill>true</fill></box></child>
//	                </template>
//	            </children>
//	        </flow-layout>
//	    </components>
//	    <templates>
//	        <titled-button>
//	            <flow-layout direction="horizontal">
//	                <children>
//	                    <template-child id="icon"/>
//	                    <button><text>{{title}}</text></button>
//	                </children>
//	            </flow-layout>
//	        </titled-button>
//	    </templates>
//	</owo-ui>
//
// # Templates
//
// A template invocation passes parameters as child elements (tag = name,
// text = value) and fills slots with child elements carrying an id. Inside
// the template body, a text node consisting of {{name}} is replaced with the
// parameter's value and each template-child element is replaced with the
// fragment supplied for its id. Elements nested in a template-child are
// fallbacks, appended to the fragment unless it already contains that tag.
//
// Templates may invoke other templates. A parameter or slot an inner
// invocation does not supply resolves against the enclosing invocations,
// innermost first.
//
// # Sessions
//
// A Spec is immutable. Parsing state lives in a Session, created per
// top-level call by the Spec convenience methods and passed to component
// property parsers as a component.Parser. The expansion stack of a session
// is empty whenever a top-level call returns, including after a failure.
//
// # Errors
//
// Structural problems are reported as *errors.ParsingError and category
// mismatches as *errors.IncompatibleError. Nothing is recovered locally: the
// first failure aborts the whole parse. LoadFile is the only entry point
// that reports and swallows errors.
package spec
