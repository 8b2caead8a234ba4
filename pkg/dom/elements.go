package dom

// element is the shared body behind every tag constructor. The
// uniform variadic signature cannot return an error, so an invalid
// argument panics with the wrapped sentinel; NewElement is the
// error-returning path for programmatic construction.
func element(tag string, args []any) *Node {
	node, err := NewElement(nil, tag, args...)
	if err != nil {
		panic(err)
	}
	return node
}

// Document structure elements

func Html(args ...any) *Node  { return element("html", args) }
func Head(args ...any) *Node  { return element("head", args) }
func Body(args ...any) *Node  { return element("body", args) }
func Title(args ...any) *Node { return element("title", args) }
func Meta(args ...any) *Node  { return element("meta", args) }
func Link(args ...any) *Node  { return element("link", args) }
func Base(args ...any) *Node  { return element("base", args) }

// Content sectioning elements

func Header(args ...any) *Node  { return element("header", args) }
func Footer(args ...any) *Node  { return element("footer", args) }
func Main(args ...any) *Node    { return element("main", args) }
func Nav(args ...any) *Node     { return element("nav", args) }
func Section(args ...any) *Node { return element("section", args) }
func Article(args ...any) *Node { return element("article", args) }
func Aside(args ...any) *Node   { return element("aside", args) }
func Address(args ...any) *Node { return element("address", args) }
func H1(args ...any) *Node      { return element("h1", args) }
func H2(args ...any) *Node      { return element("h2", args) }
func H3(args ...any) *Node      { return element("h3", args) }
func H4(args ...any) *Node      { return element("h4", args) }
func H5(args ...any) *Node      { return element("h5", args) }
func H6(args ...any) *Node      { return element("h6", args) }
func Hgroup(args ...any) *Node  { return element("hgroup", args) }

// Text content elements

func Div(args ...any) *Node        { return element("div", args) }
func P(args ...any) *Node          { return element("p", args) }
func Span(args ...any) *Node       { return element("span", args) }
func Pre(args ...any) *Node        { return element("pre", args) }
func Blockquote(args ...any) *Node { return element("blockquote", args) }
func Ul(args ...any) *Node         { return element("ul", args) }
func Ol(args ...any) *Node         { return element("ol", args) }
func Li(args ...any) *Node         { return element("li", args) }
func Dl(args ...any) *Node         { return element("dl", args) }
func Dt(args ...any) *Node         { return element("dt", args) }
func Dd(args ...any) *Node         { return element("dd", args) }
func Hr(args ...any) *Node         { return element("hr", args) }
func Figure(args ...any) *Node     { return element("figure", args) }
func Figcaption(args ...any) *Node { return element("figcaption", args) }

// Inline text semantics

func A(args ...any) *Node      { return element("a", args) }
func Strong(args ...any) *Node { return element("strong", args) }
func Em(args ...any) *Node     { return element("em", args) }
func B(args ...any) *Node      { return element("b", args) }
func I(args ...any) *Node      { return element("i", args) }
func U(args ...any) *Node      { return element("u", args) }
func S(args ...any) *Node      { return element("s", args) }
func Small(args ...any) *Node  { return element("small", args) }
func Mark(args ...any) *Node   { return element("mark", args) }
func Sub(args ...any) *Node    { return element("sub", args) }
func Sup(args ...any) *Node    { return element("sup", args) }
func Code(args ...any) *Node   { return element("code", args) }
func Kbd(args ...any) *Node    { return element("kbd", args) }
func Samp(args ...any) *Node   { return element("samp", args) }
func Var(args ...any) *Node    { return element("var", args) }
func Abbr(args ...any) *Node   { return element("abbr", args) }
func Time_(args ...any) *Node  { return element("time", args) }
func Cite(args ...any) *Node   { return element("cite", args) }
func Q(args ...any) *Node      { return element("q", args) }
func Dfn(args ...any) *Node    { return element("dfn", args) }
func Ruby(args ...any) *Node   { return element("ruby", args) }
func Rt(args ...any) *Node     { return element("rt", args) }
func Rp(args ...any) *Node     { return element("rp", args) }
func Bdi(args ...any) *Node    { return element("bdi", args) }
func Bdo(args ...any) *Node    { return element("bdo", args) }

// DataElement creates a <data> HTML element.
// For data-* attributes, use Data(key, value) from helpers.go instead.
func DataElement(args ...any) *Node { return element("data", args) }
func Br(args ...any) *Node          { return element("br", args) }
func Wbr(args ...any) *Node         { return element("wbr", args) }

// Form elements

func Form(args ...any) *Node     { return element("form", args) }
func Input(args ...any) *Node    { return element("input", args) }
func Textarea(args ...any) *Node { return element("textarea", args) }
func Select(args ...any) *Node   { return element("select", args) }
func Option(args ...any) *Node   { return element("option", args) }
func Optgroup(args ...any) *Node { return element("optgroup", args) }
func Button(args ...any) *Node   { return element("button", args) }
func Label(args ...any) *Node    { return element("label", args) }
func Fieldset(args ...any) *Node { return element("fieldset", args) }
func Legend(args ...any) *Node   { return element("legend", args) }
func Datalist(args ...any) *Node { return element("datalist", args) }
func Output(args ...any) *Node   { return element("output", args) }
func Progress(args ...any) *Node { return element("progress", args) }
func Meter(args ...any) *Node    { return element("meter", args) }

// Table elements

func Table(args ...any) *Node    { return element("table", args) }
func Thead(args ...any) *Node    { return element("thead", args) }
func Tbody(args ...any) *Node    { return element("tbody", args) }
func Tfoot(args ...any) *Node    { return element("tfoot", args) }
func Tr(args ...any) *Node       { return element("tr", args) }
func Th(args ...any) *Node       { return element("th", args) }
func Td(args ...any) *Node       { return element("td", args) }
func Caption(args ...any) *Node  { return element("caption", args) }
func Colgroup(args ...any) *Node { return element("colgroup", args) }
func Col(args ...any) *Node      { return element("col", args) }

// Media elements

func Img(args ...any) *Node     { return element("img", args) }
func Picture(args ...any) *Node { return element("picture", args) }
func Source(args ...any) *Node  { return element("source", args) }
func Video(args ...any) *Node   { return element("video", args) }
func Audio(args ...any) *Node   { return element("audio", args) }
func Track(args ...any) *Node   { return element("track", args) }
func Iframe(args ...any) *Node  { return element("iframe", args) }
func Embed(args ...any) *Node   { return element("embed", args) }
func Object(args ...any) *Node  { return element("object", args) }
func Param(args ...any) *Node   { return element("param", args) }
func Canvas(args ...any) *Node  { return element("canvas", args) }
func Svg(args ...any) *Node     { return element("svg", args) }
func Math(args ...any) *Node    { return element("math", args) }
func Map_(args ...any) *Node    { return element("map", args) }
func Area(args ...any) *Node    { return element("area", args) }

// Interactive elements

func Details(args ...any) *Node { return element("details", args) }
func Summary(args ...any) *Node { return element("summary", args) }
func Dialog(args ...any) *Node  { return element("dialog", args) }
func Menu(args ...any) *Node    { return element("menu", args) }

// Scripting elements

func Script(args ...any) *Node   { return element("script", args) }
func Noscript(args ...any) *Node { return element("noscript", args) }
func Template(args ...any) *Node { return element("template", args) }
func Slot(args ...any) *Node     { return element("slot", args) }
func Style(args ...any) *Node    { return element("style", args) }

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *Node {
	return element(tag, args)
}

// builtins maps tag names to their constructors for name resolution.
var builtins = map[string]func(args ...any) *Node{
	"html": Html, "head": Head, "body": Body, "title": Title,
	"meta": Meta, "link": Link, "base": Base,

	"header": Header, "footer": Footer, "main": Main, "nav": Nav,
	"section": Section, "article": Article, "aside": Aside,
	"address": Address, "h1": H1, "h2": H2, "h3": H3, "h4": H4,
	"h5": H5, "h6": H6, "hgroup": Hgroup,

	"div": Div, "p": P, "span": Span, "pre": Pre,
	"blockquote": Blockquote, "ul": Ul, "ol": Ol, "li": Li,
	"dl": Dl, "dt": Dt, "dd": Dd, "hr": Hr, "figure": Figure,
	"figcaption": Figcaption,

	"a": A, "strong": Strong, "em": Em, "b": B, "i": I, "u": U,
	"s": S, "small": Small, "mark": Mark, "sub": Sub, "sup": Sup,
	"code": Code, "kbd": Kbd, "samp": Samp, "var": Var, "abbr": Abbr,
	"time": Time_, "cite": Cite, "q": Q, "dfn": Dfn, "ruby": Ruby,
	"rt": Rt, "rp": Rp, "bdi": Bdi, "bdo": Bdo, "data": DataElement,
	"br": Br, "wbr": Wbr,

	"form": Form, "input": Input, "textarea": Textarea,
	"select": Select, "option": Option, "optgroup": Optgroup,
	"button": Button, "label": Label, "fieldset": Fieldset,
	"legend": Legend, "datalist": Datalist, "output": Output,
	"progress": Progress, "meter": Meter,

	"table": Table, "thead": Thead, "tbody": Tbody, "tfoot": Tfoot,
	"tr": Tr, "th": Th, "td": Td, "caption": Caption,
	"colgroup": Colgroup, "col": Col,

	"img": Img, "picture": Picture, "source": Source, "video": Video,
	"audio": Audio, "track": Track, "iframe": Iframe, "embed": Embed,
	"object": Object, "param": Param, "canvas": Canvas, "svg": Svg,
	"math": Math, "map": Map_, "area": Area,

	"details": Details, "summary": Summary, "dialog": Dialog,
	"menu": Menu,

	"script": Script, "noscript": Noscript, "template": Template,
	"slot": Slot, "style": Style,
}
