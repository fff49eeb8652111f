package generator

import "strings"

// Branch identifies which canned response a prompt selects.
type Branch string

const (
	BranchError   Branch = "error"
	BranchAll     Branch = "all"
	BranchTable   Branch = "table"
	BranchMath    Branch = "math"
	BranchChart   Branch = "chart"
	BranchDiagram Branch = "diagram"
	BranchDefault Branch = "default"
)

// Classify matches the prompt against the branch keywords in fixed precedence
// order. First match wins; matching is case-insensitive substring.
func Classify(prompt string) Branch {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "error"):
		return BranchError
	case strings.Contains(p, "all"):
		return BranchAll
	case strings.Contains(p, "table"):
		return BranchTable
	case strings.Contains(p, "math"):
		return BranchMath
	case strings.Contains(p, "chart"):
		return BranchChart
	case strings.Contains(p, "diagram"):
		return BranchDiagram
	default:
		return BranchDefault
	}
}

var thinkingSteps = []string{
	"Analyzing the prompt...",
	"Gathering components for the response...",
	"Structuring the output...",
}

const (
	thinkingErrorMessage = "An error occurred during processing: Simulated error"
	contentErrorMessage  = "Model execution failed: Simulated error after content"
	doneMessage          = "Response complete"
)

const (
	flowchartLR = "```mermaid\nflowchart LR\n    A[Idea] --> B{Plan?}\n    B -->|Yes| C[Execute]\n    B -->|No| A\n    C --> D[Done]\n```"

	flowchartTD = "```mermaid\nflowchart TD\n    A[Start] --> B{Is it working?}\n    B -->|Yes| C[Great!]\n    B -->|No| D[Debug]\n    D --> B\n```"

	sequenceDiagram = "```mermaid\nsequenceDiagram\n    participant Client\n    participant Server\n    participant LLM\n    Client->>Server: Send prompt\n    Server->>LLM: Process prompt\n    LLM-->>Server: Return thinking steps\n    Server-->>Client: Stream thinking\n    LLM-->>Server: Return response chunks\n    Server-->>Client: Stream response\n    Note right of Client: Renders progressively\n```"

	classDiagram = "```mermaid\nclassDiagram\n    class StreamingService {\n        +process_prompt()\n        +stream_response()\n    }\n    class LLMProvider {\n        -model: string\n        +generate_response()\n        +stream_thinking()\n    }\n    class Client {\n        +display_response()\n        +render_markdown()\n    }\n    StreamingService --> LLMProvider\n    Client --> StreamingService\n```"
)

// fragmentsFor builds the branch's content plan. Each call returns a fresh
// slice owned by the caller.
func fragmentsFor(b Branch) []string {
	switch b {
	case BranchError:
		return []string{
			"# Simulating an Error\n\n",
			"Processing your request, but expecting an error...\n\n",
		}
	case BranchAll:
		return []string{
			"# Demonstration of All Components\n\n",
			"This response showcases various rendering capabilities:\n\n",
			"## Markdown Features\n\n",
			"Here's a standard markdown list:\n\n",
			"- First item\n- Second item\n- Third item\n\n",
			"And a simple **bold** and *italic* text example.\n\n",
			"## Math Rendering\n\n",
			"Inline math: The quadratic formula is $x = \\frac{-b \\pm \\sqrt{b^2 - 4ac}}{2a}$.\n\n",
			"Display math:\n\n",
			"$$\\int_{-\\infty}^{\\infty} e^{-x^2} dx = \\sqrt{\\pi}$$\n\n",
			"## Plotly Chart\n\n",
			"Here is an embedded interactive line chart:\n\n",
			fence("plotly", simpleLineChart()),
			"## Mermaid Diagram\n\n",
			"Visualizing a simple process with a flowchart:\n\n",
			flowchartLR + "\n\n",
			"## Interactive Table (DataTables)\n\n",
			"Here is an interactive table with sorting, filtering, and pagination:\n\n",
			fence("datatables", demoTableConfig()),
			"## Simple Markdown Table\n\n",
			"Data can also be presented in simple markdown tables:\n\n",
			"| Header 1 | Header 2 | Header 3 |\n",
			"|----------|----------|----------|\n",
			"| Row 1, Col 1 | Row 1, Col 2 | Row 1, Col 3 |\n",
			"| Row 2, Col 1 | Row 2, Col 2 | Row 2, Col 3 |\n",
			"| Row 3, Col 1 | Row 3, Col 2 | Row 3, Col 3 |\n\n",
			"This concludes the demonstration of all components.",
		}
	case BranchTable:
		return []string{
			"# Interactive Table Demonstration (DataTables)\n\n",
			"This section demonstrates an interactive table using the DataTables.js library.\n\n",
			"You can sort columns by clicking on the headers, filter using the search box, and navigate through pages.\n\n",
			fence("datatables", demoTableConfig()),
			"This table includes features like sorting, filtering, pagination, and basic styling.",
		}
	case BranchMath:
		return []string{
			"# Math Rendering Example\n\n",
			"You can include inline math like $E = mc^2$ or display equations:\n\n",
			"$$\\frac{-b \\pm \\sqrt{b^2 - 4ac}}{2a}$$\n\n",
			"More complex examples:\n\n",
			"$$\\begin{aligned}\n\\nabla \\times \\vec{\\mathbf{B}} -\\, \\frac{1}{c}\\, \\frac{\\partial\\vec{\\mathbf{E}}}{\\partial t} & = \\frac{4\\pi}{c}\\vec{\\mathbf{j}} \\\\n\\nabla \\cdot \\vec{\\mathbf{E}} & = 4 \\pi \\rho \\\\n\\nabla \\times \\vec{\\mathbf{E}}\\, +\\, \\frac{1}{c}\\, \\frac{\\partial\\vec{\\mathbf{B}}}{\\partial t} & = \\vec{\\mathbf{0}} \\\\n\\nabla \\cdot \\vec{\\mathbf{B}} & = 0\\end{aligned}$$\n\n",
			"You can also include inline math within text explanations: If $\\alpha > \\beta$ then we need to recalculate $\\gamma = \\frac{\\alpha - \\beta}{2}$ to balance the equation.",
		}
	case BranchChart:
		return []string{
			"# Plotly Chart Demonstration\n\n",
			"Interactive charts can be embedded using Plotly. Here's a line chart showing website performance:\n\n",
			fence("plotly", trafficLineChart()),
			"Bar charts are excellent for categorical comparisons:\n\n",
			fence("plotly", surveyBarChart()),
			"These charts are fully interactive - you can hover over data points, zoom, pan, and even download them as images.",
		}
	case BranchDiagram:
		return []string{
			"# Diagram Demonstration\n\n",
			"Diagrams can be created using Mermaid syntax. Here's a flowchart:\n\n",
			flowchartTD + "\n\n",
			"You can also create sequence diagrams to show interactions:\n\n",
			sequenceDiagram + "\n\n",
			"Or class diagrams for system architecture:\n\n",
			classDiagram + "\n\n",
			"Diagrams are great for explaining complex processes and relationships.",
		}
	default:
		return []string{
			"# Standard Markdown Response\n\n",
			"This is a standard markdown response with **bold text**, *italic text*, and a list:\n\n",
			"- Item 1\n- Item 2\n- Item 3\n\n",
			"You can also include [links](https://example.com) and `inline code`.\n\n",
			"```python\n# Code blocks are supported\ndef hello_world():\n    print('Hello, World!')\n```\n\n",
			"That's the basic functionality demonstration! Try typing 'math', 'chart', 'diagram', 'table', 'all', or 'error'.",
		}
	}
}
