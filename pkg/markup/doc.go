/*
Package markup converts strings with bracketed style tags into a tree of
styled text spans.

	res := markup.Format("<b>Hi <c=#00ff00>there</c></b>")
	res.Plain // "Hi there"

# Tags

Tag names are case-insensitive.

	<b> <bold>                bold
	<i> <italic>              italic
	<u> <underline>           underline
	<m> <mono>                monospace
	<c=X> <color=X>           color: #rrggbb, #rgb, (r,g,b) or a name
	<a=URL> <link=URL>        link (defaults to the inner text), underlined
	<gradient colors=a,b,..>  per-character gradient; also from=X to=Y
	<rainbow>                 per-character hue sweep
	<o> <obf> <obfuscated>    random replacement characters

Unknown tags keep their content unchanged.

# Malformed input

Formatting never fails. A '<' with no '>' is literal text, close tags that
do not match the innermost open tag are dropped, and open tags with no close
run to the end of the input.

# Nesting

Styles are applied after the inner content is built, so for the same
attribute the outer tag wins: in <c=red><c=blue>X</c></c> the X is red.

# Pipeline

Tokenize produces the token list, a Parser builds the tree, and Formatter
ties both to a ColorTable. Renderers for terminals, IRC, XML, JSON and cell
grids live under pkg/ui.
*/
package markup
