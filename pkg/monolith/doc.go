// Package monolith provides a small template engine for text documents.
// Templates mix literal text with directives that are expanded against a
// nested data context (mappings, sequences, scalars) to produce a string.
//
// Basic Usage:
//
//	engine := monolith.New("templates")
//
//	context := monolith.Context{
//	    "title": "My Site",
//	    "posts": []interface{}{
//	        map[string]interface{}{"name": "First post", "year": 2024},
//	        map[string]interface{}{"name": "Second post", "year": 2025},
//	    },
//	}
//
//	out, err := engine.Render("base.html", context)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
//
// Template Syntax:
//
// Variables: {{ title }}, {{ posts.0.name }}, {{ missing | default:'N/A' }}
//
// Conditionals: {%1 if cond %}...{%1 elseif other %}...{%1 else %}...{%1 endif %}
//
// Loops: {%1 for post in posts %}...{%1 endfor %}
//
// Includes: {% include "navbar.html" %}
//
// Conditional and loop tags carry a numeric block id (the "1" above) that
// pairs an opening tag with its branch and closing tags when blocks nest.
// Tags whose ids do not pair up are left verbatim in the output rather than
// reported as errors.
//
// Loop bodies render in an isolated scope holding only the loop variable;
// they cannot observe the enclosing context. This is a deliberate contract,
// not an accident of implementation.
package monolith
