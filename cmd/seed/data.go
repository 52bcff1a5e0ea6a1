package main

type seedUser struct {
	Email    string
	Name     string
	Password string
	Image    string
}

type seedPost struct {
	AuthorEmail string
	Title       string
	Content     string
	Excerpt     string
	CoverImage  string
	Published   bool
}

var users = []seedUser{
	{
		Email:    "alex@example.com",
		Name:     "Alex Johnson",
		Password: "password123",
		Image:    "https://i.pravatar.cc/300?img=1",
	},
	{
		Email:    "sarah@example.com",
		Name:     "Sarah Parker",
		Password: "password123",
		Image:    "https://i.pravatar.cc/300?img=2",
	},
}

var posts = []seedPost{
	{
		AuthorEmail: "alex@example.com",
		Title:       "Getting Started with Framer Motion",
		Content: `## Introduction to Framer Motion

Framer Motion is an animation library for React that makes it easy to create animations with minimal code.

### Installation

    npm install framer-motion

### Variants

Variants define animation states and the transitions between them.`,
		Excerpt:    "Learn how to add beautiful animations to your React applications with Framer Motion.",
		CoverImage: "https://images.unsplash.com/photo-1558655146-d09347e92766?auto=format&fit=crop&w=1000&q=80",
		Published:  true,
	},
	{
		AuthorEmail: "alex@example.com",
		Title:       "Creating Responsive Layouts with Tailwind CSS",
		Content: `## Introduction to Tailwind CSS

Tailwind CSS is a utility-first CSS framework for building custom designs without leaving your HTML.

### Responsive modifiers

| prefix | min width |
|--------|-----------|
| sm     | 640px     |
| md     | 768px     |
| lg     | 1024px    |`,
		Excerpt:    "Explore how to create responsive designs efficiently using Tailwind CSS utility classes.",
		CoverImage: "https://images.unsplash.com/photo-1499951360447-b19be8fe80f5?auto=format&fit=crop&w=1000&q=80",
		Published:  true,
	},
	{
		AuthorEmail: "sarah@example.com",
		Title:       "Introduction to Next.js 13 App Router",
		Content: `## The App Router

Next.js 13 introduced the App Router, built on React Server Components.

### Layouts

Layouts share UI between multiple pages.`,
		Excerpt:    "Discover the powerful features of Next.js 13's App Router and how it changes React development.",
		CoverImage: "https://images.unsplash.com/photo-1617040619263-41c5a9ca7521?auto=format&fit=crop&w=1000&q=80",
		Published:  true,
	},
	{
		AuthorEmail: "sarah@example.com",
		Title:       "Getting Started with TypeScript",
		Content: `## Introduction to TypeScript

TypeScript is a strongly typed language that builds on JavaScript.

    npm install typescript --save-dev`,
		Excerpt:    "Learn the basics of TypeScript and how it can help you write more robust JavaScript code.",
		CoverImage: "https://images.unsplash.com/photo-1623479322729-28b25c16b011?auto=format&fit=crop&w=1000&q=80",
		Published:  true,
	},
	{
		AuthorEmail: "alex@example.com",
		Title:       "Building a REST API with Node.js and Express",
		Content: `## Building RESTful APIs

We create a RESTful API with routes, middleware and error handling.

- ~~callbacks~~ async handlers
- JSON bodies
- 404 and error handlers`,
		Excerpt:    "Learn how to build a RESTful API with Node.js and Express, including routes, middleware, and error handling.",
		CoverImage: "https://images.unsplash.com/photo-1555066931-4365d14bab8c?auto=format&fit=crop&w=1000&q=80",
		Published:  false,
	},
}
