package content

import "strings"

const fence = "```"

// Builtin returns the articles the site ships with. Each call returns a fresh
// slice, so callers may not share it by accident.
func Builtin() []Article {
	return []Article{
		{
			ID:            1,
			Path:          "introduction-to-cloudflare-pages",
			Title:         "Introduction to Cloudflare Pages",
			Author:        "Alex Doe",
			PublishedDate: "2024-10-01",
			Tags:          []string{"Cloudflare", "Hosting", "Serverless"},
			Content: lines(
				"",
				"# Welcome to Cloudflare Pages!",
				"",
				"Cloudflare Pages is a Jamstack platform for frontend developers to collaborate and deploy websites. ",
				"It offers a seamless integration with Git, enabling automatic builds and deployments upon new commits.",
				"",
				"## Key Features:",
				"- **Git Integration:** Connect your GitHub or GitLab repository for automatic deployments.",
				"- **Blazing Fast Speeds:** Websites are served from Cloudflare's global edge network, ensuring low latency for users worldwide.",
				"- **Unlimited Requests & Bandwidth:** No need to worry about traffic spikes.",
				"- **Easy Custom Domains:** Add your own domain with free, automatically renewed SSL certificates.",
				"",
			),
		},
		{
			ID:            2,
			Path:          "deploying-a-react-app-to-cloudflare-pages",
			Title:         "Deploying a React App to Cloudflare Pages",
			Author:        "Jane Smith",
			PublishedDate: "2024-10-05",
			Tags:          []string{"React", "Cloudflare", "Deployment"},
			Content: lines(
				"",
				"# How to Deploy Your React App on Cloudflare Pages",
				"",
				"Deploying a Create React App project is incredibly simple with Cloudflare Pages.",
				"",
				"## Step 1: Push to Git",
				"First, ensure your React application is pushed to a GitHub or GitLab repository.",
				"",
				"## Step 2: Create a New Pages Project",
				"1. Log in to your Cloudflare dashboard.",
				"2. Navigate to **Workers & Pages** and select the **Pages** tab.",
				"3. Click **Create a project** and connect your Git account.",
				"4. Select the repository containing your React app.",
				"",
				"## Step 3: Configure Build Settings",
				"For a standard Create React App, use the following build settings:",
				"- **Framework preset:** Create React App",
				"- **Build command:** `npm run build`",
				"- **Build output directory:** `build`",
				"",
				"That's it! Cloudflare will build and deploy your site.",
				"",
			),
		},
		{
			ID:            3,
			Path:          "tailwind-with-react",
			Title:         "Setting Up Tailwind CSS with React",
			Author:        "Sam Ray",
			PublishedDate: "2024-10-12",
			Tags:          []string{"React", "TailwindCSS", "CSS"},
			Content: lines(
				"",
				"# Integrating Tailwind CSS into a React Project",
				"",
				"Tailwind CSS is a utility-first CSS framework that can be composed to build any design, directly in your markup.",
				"",
				"## Installation",
				"Follow the official Tailwind CSS guide for the most up-to-date instructions. The general steps are:",
				"",
				"1.  **Install Tailwind and its dependencies:**",
				"    "+fence+"bash",
				"    npm install tailwindcss @tailwindcss/vite",
				"    "+fence,
				"",
				"2.  **Add to your config file:**",
				"    "+fence+"typescript",
				"    import { defineConfig } from 'vite'",
				"    import tailwindcss from '@tailwindcss/vite' // Import Tailwind CSS plugin",
				"    export default defineConfig({",
				"      plugins: [",
				"        tailwindcss(), // Use the Tailwind CSS plugin",
				"      ],",
				"    })",
				"    "+fence,
				"",
				"3.  **Add import to index.css:**",
				"    In your `index.css`,add the following to include Tailwind's styles:",
				"    "+fence+"css",
				`    @import "tailwindcss";`,
				"    "+fence,
				"",
				"Now you can start using Tailwind's utility classes in your React components!",
				"",
			),
		},
	}
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n")
}
